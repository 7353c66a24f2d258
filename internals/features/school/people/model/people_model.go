// file: internals/features/school/people/model/people_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "educentr_backend/internals/features/school/groups/model"
)

/* =======================================================
   TeacherModel — table teachers
   ======================================================= */

type TeacherModel struct {
	TeacherID        uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`
	TeacherFirstName string    `json:"teacher_first_name" gorm:"type:varchar(80);not null;column:teacher_first_name"`
	TeacherLastName  string    `json:"teacher_last_name" gorm:"type:varchar(80);not null;column:teacher_last_name"`
	TeacherEmail     string    `json:"teacher_email" gorm:"type:varchar(120);column:teacher_email"`
	TeacherPhone     string    `json:"teacher_phone" gorm:"type:varchar(30);column:teacher_phone"`

	// Login user provisioned on creation; password is shown once.
	TeacherUserID          *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"type:uuid;column:teacher_user_id"`
	TeacherInitialPassword string     `json:"teacher_initial_password" gorm:"type:varchar(32);column:teacher_initial_password"`

	Groups []groupModel.GroupModel `json:"groups,omitempty" gorm:"many2many:teacher_groups;joinForeignKey:TeacherID;joinReferences:GroupID"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

/* =======================================================
   ParentModel — table parents
   ======================================================= */

type ParentModel struct {
	ParentID        uuid.UUID `json:"parent_id" gorm:"type:uuid;primaryKey;column:parent_id;default:gen_random_uuid()"`
	ParentFirstName string    `json:"parent_first_name" gorm:"type:varchar(80);not null;column:parent_first_name"`
	ParentLastName  string    `json:"parent_last_name" gorm:"type:varchar(80);not null;column:parent_last_name"`
	ParentPhone     string    `json:"parent_phone" gorm:"type:varchar(30);column:parent_phone"`
	ParentEmail     string    `json:"parent_email" gorm:"type:varchar(120);column:parent_email"`

	ParentUserID          *uuid.UUID `json:"parent_user_id,omitempty" gorm:"type:uuid;column:parent_user_id"`
	ParentInitialPassword string     `json:"parent_initial_password" gorm:"type:varchar(32);column:parent_initial_password"`

	ParentCreatedAt time.Time      `json:"parent_created_at" gorm:"column:parent_created_at;not null;autoCreateTime"`
	ParentUpdatedAt time.Time      `json:"parent_updated_at" gorm:"column:parent_updated_at;not null;autoUpdateTime"`
	ParentDeletedAt gorm.DeletedAt `json:"parent_deleted_at" gorm:"column:parent_deleted_at;index"`
}

func (ParentModel) TableName() string {
	return "parents"
}

/* =======================================================
   StudentModel — table students
   ======================================================= */

type StudentModel struct {
	StudentID        uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`
	StudentFirstName string    `json:"student_first_name" gorm:"type:varchar(80);not null;column:student_first_name"`
	StudentLastName  string    `json:"student_last_name" gorm:"type:varchar(80);not null;column:student_last_name"`
	StudentGroupID   uuid.UUID `json:"student_group_id" gorm:"type:uuid;not null;column:student_group_id"`
	StudentNotes     string    `json:"student_notes" gorm:"type:text;column:student_notes"`

	StudentUserID          *uuid.UUID `json:"student_user_id,omitempty" gorm:"type:uuid;column:student_user_id"`
	StudentInitialPassword string     `json:"student_initial_password" gorm:"type:varchar(32);column:student_initial_password"`

	Parents []ParentModel `json:"parents,omitempty" gorm:"many2many:student_parents;joinForeignKey:StudentID;joinReferences:ParentID"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
