// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Roles
   ======================================================= */

const (
	RoleAdmin     = "admin"
	RoleMethodist = "methodist"
	RoleManager   = "manager"
	RoleTeacher   = "teacher"
	RoleParent    = "parent"
	RoleStudent   = "student"
)

var AllRoles = []string{RoleAdmin, RoleMethodist, RoleManager, RoleTeacher, RoleParent, RoleStudent}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

/* =======================================================
   UserModel — table users
   ======================================================= */

type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"type:varchar(50);not null;uniqueIndex;column:user_name"`
	UserFullName string    `json:"user_full_name" gorm:"type:varchar(160);column:user_full_name"`
	UserEmail    string    `json:"user_email" gorm:"type:varchar(120);column:user_email"`
	UserPassword string    `json:"-" gorm:"type:text;not null;column:user_password"`

	// One of AllRoles; drives the role gate on every portal.
	UserRole string `json:"user_role" gorm:"type:varchar(20);not null;column:user_role"`

	UserIsActive bool `json:"user_is_active" gorm:"not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}
