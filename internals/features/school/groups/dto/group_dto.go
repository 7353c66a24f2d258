// file: internals/features/school/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/school/groups/model"
)

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
}

func (r *CreateGroupRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateGroupRequest) ApplyToModel(dst *m.GroupModel) {
	dst.GroupName = strings.TrimSpace(r.Name)
	dst.GroupDescription = strings.TrimSpace(r.Description)
}

type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateGroupRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateGroupRequest) ApplyPatch(dst *m.GroupModel) {
	if r.Name != nil {
		dst.GroupName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		dst.GroupDescription = strings.TrimSpace(*r.Description)
	}
}

type GroupResponse struct {
	GroupID     uuid.UUID `json:"group_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewGroupResponse(src *m.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:     src.GroupID,
		Name:        src.GroupName,
		Description: src.GroupDescription,
		CreatedAt:   src.GroupCreatedAt,
	}
}
