// file: internals/features/school/assignments/model/method_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Assignment status
   ======================================================= */

type AssignmentStatus string

const (
	StatusTodo       AssignmentStatus = "todo"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusReview     AssignmentStatus = "review"
	StatusDone       AssignmentStatus = "done"
)

func IsValidStatus(s AssignmentStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

/* =======================================================
   MethodAssignmentModel — table method_assignments

   Links one teacher to one method package (unique pair).
   can_edit is a derived flag: the sequential-unlock scan is
   its single writer after every transition.
   ======================================================= */

type MethodAssignmentModel struct {
	MethodAssignmentID uuid.UUID `json:"method_assignment_id" gorm:"type:uuid;primaryKey;column:method_assignment_id;default:gen_random_uuid()"`

	MethodAssignmentPackageID uuid.UUID `json:"method_assignment_package_id" gorm:"type:uuid;not null;column:method_assignment_package_id;uniqueIndex:uq_method_assignments_package_teacher"`
	MethodAssignmentTeacherID uuid.UUID `json:"method_assignment_teacher_id" gorm:"type:uuid;not null;index;column:method_assignment_teacher_id;uniqueIndex:uq_method_assignments_package_teacher"`

	MethodAssignmentGrantedBy *uuid.UUID `json:"method_assignment_granted_by,omitempty" gorm:"type:uuid;column:method_assignment_granted_by"`

	MethodAssignmentDeadline *time.Time       `json:"method_assignment_deadline,omitempty" gorm:"type:date;column:method_assignment_deadline"`
	MethodAssignmentCanEdit  bool             `json:"method_assignment_can_edit" gorm:"not null;default:true;column:method_assignment_can_edit"`
	MethodAssignmentStatus   AssignmentStatus `json:"method_assignment_status" gorm:"type:varchar(20);not null;default:'todo';column:method_assignment_status"`
	MethodAssignmentNotes    string           `json:"method_assignment_notes" gorm:"type:text;column:method_assignment_notes"`

	MethodAssignmentCreatedAt time.Time      `json:"method_assignment_created_at" gorm:"column:method_assignment_created_at;not null;autoCreateTime"`
	MethodAssignmentUpdatedAt time.Time      `json:"method_assignment_updated_at" gorm:"column:method_assignment_updated_at;not null;autoUpdateTime"`
	MethodAssignmentDeletedAt gorm.DeletedAt `json:"method_assignment_deleted_at" gorm:"column:method_assignment_deleted_at;index"`
}

func (MethodAssignmentModel) TableName() string {
	return "method_assignments"
}

/* =======================================================
   MethodAssignmentCommentModel — table method_assignment_comments

   Append-only audit trail, ordered by creation time.
   ======================================================= */

type MethodAssignmentCommentModel struct {
	MethodAssignmentCommentID uuid.UUID `json:"method_assignment_comment_id" gorm:"type:uuid;primaryKey;column:method_assignment_comment_id;default:gen_random_uuid()"`

	MethodAssignmentCommentAssignmentID uuid.UUID  `json:"method_assignment_comment_assignment_id" gorm:"type:uuid;not null;index;column:method_assignment_comment_assignment_id"`
	MethodAssignmentCommentSenderID     *uuid.UUID `json:"method_assignment_comment_sender_id,omitempty" gorm:"type:uuid;column:method_assignment_comment_sender_id"`
	MethodAssignmentCommentSenderRole   string     `json:"method_assignment_comment_sender_role" gorm:"type:varchar(20);column:method_assignment_comment_sender_role"`
	MethodAssignmentCommentSenderName   string     `json:"method_assignment_comment_sender_name" gorm:"type:varchar(120);column:method_assignment_comment_sender_name"`
	MethodAssignmentCommentText         string     `json:"method_assignment_comment_text" gorm:"type:text;not null;column:method_assignment_comment_text"`

	MethodAssignmentCommentCreatedAt time.Time `json:"method_assignment_comment_created_at" gorm:"column:method_assignment_comment_created_at;not null;autoCreateTime"`
}

func (MethodAssignmentCommentModel) TableName() string {
	return "method_assignment_comments"
}
