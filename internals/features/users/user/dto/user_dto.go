// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/users/user/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =======================================================
   Response DTOs
   ======================================================= */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserFullName  string    `json:"user_full_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewUserResponse(src *m.UserModel) UserResponse {
	return UserResponse{
		UserID:        src.UserID,
		UserName:      src.UserName,
		UserFullName:  src.UserFullName,
		UserEmail:     src.UserEmail,
		UserRole:      src.UserRole,
		UserIsActive:  src.UserIsActive,
		UserCreatedAt: src.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
