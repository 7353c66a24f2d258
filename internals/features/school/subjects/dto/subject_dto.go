// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/school/subjects/model"
)

/* =======================================================
   Subjects
   ======================================================= */

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

func (r *CreateSubjectRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type UpdateSubjectRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=120"`
}

func (r *UpdateSubjectRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type SubjectResponse struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSubjectResponse(src *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID: src.SubjectID,
		Name:      src.SubjectName,
		CreatedAt: src.SubjectCreatedAt,
	}
}

/* =======================================================
   Lesson topics
   ======================================================= */

type CreateLessonTopicRequest struct {
	Name            string  `json:"name" validate:"required,max=180"`
	SubjectID       string  `json:"subject_id" validate:"required,uuid4"`
	MethodPackageID *string `json:"method_package_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateLessonTopicRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateLessonTopicRequest) ApplyToModel(dst *m.LessonTopicModel) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(r.SubjectID))
	if err != nil {
		return errors.New("subject_id: invalid uuid")
	}
	dst.LessonTopicName = strings.TrimSpace(r.Name)
	dst.LessonTopicSubjectID = subjectID
	if r.MethodPackageID != nil && strings.TrimSpace(*r.MethodPackageID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.MethodPackageID))
		if err != nil {
			return errors.New("method_package_id: invalid uuid")
		}
		dst.LessonTopicMethodPackageID = &id
	}
	return nil
}

type UpdateLessonTopicRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=180"`
	SubjectID       *string `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	MethodPackageID *string `json:"method_package_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *UpdateLessonTopicRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateLessonTopicRequest) ApplyPatch(dst *m.LessonTopicModel) error {
	if r.Name != nil {
		dst.LessonTopicName = strings.TrimSpace(*r.Name)
	}
	if r.SubjectID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.SubjectID))
		if err != nil {
			return errors.New("subject_id: invalid uuid")
		}
		dst.LessonTopicSubjectID = id
	}
	if r.MethodPackageID != nil {
		if strings.TrimSpace(*r.MethodPackageID) == "" {
			dst.LessonTopicMethodPackageID = nil
		} else {
			id, err := uuid.Parse(strings.TrimSpace(*r.MethodPackageID))
			if err != nil {
				return errors.New("method_package_id: invalid uuid")
			}
			dst.LessonTopicMethodPackageID = &id
		}
	}
	return nil
}

type LessonTopicResponse struct {
	LessonTopicID   uuid.UUID  `json:"lesson_topic_id"`
	Name            string     `json:"name"`
	SubjectID       uuid.UUID  `json:"subject_id"`
	MethodPackageID *uuid.UUID `json:"method_package_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewLessonTopicResponse(src *m.LessonTopicModel) LessonTopicResponse {
	return LessonTopicResponse{
		LessonTopicID:   src.LessonTopicID,
		Name:            src.LessonTopicName,
		SubjectID:       src.LessonTopicSubjectID,
		MethodPackageID: src.LessonTopicMethodPackageID,
		CreatedAt:       src.LessonTopicCreatedAt,
	}
}
