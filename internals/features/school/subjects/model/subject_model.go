// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   SubjectModel — table subjects
   ======================================================= */

type SubjectModel struct {
	SubjectID   uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`
	SubjectName string    `json:"subject_name" gorm:"type:varchar(120);not null;uniqueIndex;column:subject_name"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

/* =======================================================
   LessonTopicModel — table lesson_topics
   ======================================================= */

type LessonTopicModel struct {
	LessonTopicID   uuid.UUID `json:"lesson_topic_id" gorm:"type:uuid;primaryKey;column:lesson_topic_id;default:gen_random_uuid()"`
	LessonTopicName string    `json:"lesson_topic_name" gorm:"type:varchar(180);not null;uniqueIndex;column:lesson_topic_name"`

	LessonTopicSubjectID uuid.UUID `json:"lesson_topic_subject_id" gorm:"type:uuid;not null;column:lesson_topic_subject_id"`

	// Optional default method package for the topic.
	LessonTopicMethodPackageID *uuid.UUID `json:"lesson_topic_method_package_id,omitempty" gorm:"type:uuid;column:lesson_topic_method_package_id"`

	LessonTopicCreatedAt time.Time      `json:"lesson_topic_created_at" gorm:"column:lesson_topic_created_at;not null;autoCreateTime"`
	LessonTopicUpdatedAt time.Time      `json:"lesson_topic_updated_at" gorm:"column:lesson_topic_updated_at;not null;autoUpdateTime"`
	LessonTopicDeletedAt gorm.DeletedAt `json:"lesson_topic_deleted_at" gorm:"column:lesson_topic_deleted_at;index"`
}

func (LessonTopicModel) TableName() string {
	return "lesson_topics"
}
