// file: internals/features/school/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   GroupModel — table groups
   ======================================================= */

type GroupModel struct {
	GroupID          uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey;column:group_id;default:gen_random_uuid()"`
	GroupName        string    `json:"group_name" gorm:"type:varchar(120);not null;uniqueIndex;column:group_name"`
	GroupDescription string    `json:"group_description" gorm:"type:text;column:group_description"`

	GroupCreatedAt time.Time      `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt time.Time      `json:"group_updated_at" gorm:"column:group_updated_at;not null;autoUpdateTime"`
	GroupDeletedAt gorm.DeletedAt `json:"group_deleted_at" gorm:"column:group_deleted_at;index"`
}

func (GroupModel) TableName() string {
	return "groups"
}
