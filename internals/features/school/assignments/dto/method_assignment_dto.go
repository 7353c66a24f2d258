// file: internals/features/school/assignments/dto/method_assignment_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/school/assignments/model"
)

const layoutDate = "2006-01-02"

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateAssignmentRequest struct {
	MethodPackageID string  `json:"method_package_id" validate:"required,uuid4"`
	TeacherID       string  `json:"teacher_id" validate:"required,uuid4"`
	Deadline        *string `json:"deadline,omitempty"` // YYYY-MM-DD
	Status          string  `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Notes           string  `json:"notes"`
}

func (r *CreateAssignmentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateAssignmentRequest) ApplyToModel(dst *m.MethodAssignmentModel) error {
	pkgID, err := uuid.Parse(r.MethodPackageID)
	if err != nil {
		return errors.New("method_package_id: invalid uuid")
	}
	teacherID, err := uuid.Parse(r.TeacherID)
	if err != nil {
		return errors.New("teacher_id: invalid uuid")
	}
	dst.MethodAssignmentPackageID = pkgID
	dst.MethodAssignmentTeacherID = teacherID
	dst.MethodAssignmentNotes = strings.TrimSpace(r.Notes)

	if r.Status != "" {
		dst.MethodAssignmentStatus = m.AssignmentStatus(r.Status)
	} else {
		dst.MethodAssignmentStatus = m.StatusTodo
	}

	if r.Deadline != nil && strings.TrimSpace(*r.Deadline) != "" {
		deadline, err := time.Parse(layoutDate, strings.TrimSpace(*r.Deadline))
		if err != nil {
			return errors.New("deadline: expected YYYY-MM-DD")
		}
		dst.MethodAssignmentDeadline = &deadline
	}
	return nil
}

type UpdateAssignmentRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress review done"`
	Notes    *string `json:"notes,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// TouchesTeacherFields reports whether the patch stays inside the fields a
// teacher is allowed to change (status and notes).
func (r *UpdateAssignmentRequest) TouchesOnlyTeacherFields() bool {
	return r.Deadline == nil
}

func (r *UpdateAssignmentRequest) ApplyPatch(dst *m.MethodAssignmentModel) error {
	if r.Status != nil {
		dst.MethodAssignmentStatus = m.AssignmentStatus(*r.Status)
	}
	if r.Notes != nil {
		dst.MethodAssignmentNotes = strings.TrimSpace(*r.Notes)
	}
	if r.Deadline != nil {
		if strings.TrimSpace(*r.Deadline) == "" {
			dst.MethodAssignmentDeadline = nil
		} else {
			deadline, err := time.Parse(layoutDate, strings.TrimSpace(*r.Deadline))
			if err != nil {
				return errors.New("deadline: expected YYYY-MM-DD")
			}
			dst.MethodAssignmentDeadline = &deadline
		}
	}
	return nil
}

type BulkAssignRequest struct {
	TeacherID         string  `json:"teacher" validate:"required,uuid4"`
	SubjectID         string  `json:"subject" validate:"required,uuid4"`
	StartMethodNumber int     `json:"start_method_number" validate:"omitempty,min=1,max=12"`
	Status            string  `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Deadline          *string `json:"deadline,omitempty"`
	Notes             string  `json:"notes"`
}

func (r *BulkAssignRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type TransitionRequest struct {
	Comment string `json:"comment"`
	Text    string `json:"text"`
}

// CommentText prefers "comment" over the legacy "text" key.
func (r *TransitionRequest) CommentText() string {
	if strings.TrimSpace(r.Comment) != "" {
		return strings.TrimSpace(r.Comment)
	}
	return strings.TrimSpace(r.Text)
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r *CreateCommentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =======================================================
   Response DTOs
   ======================================================= */

type AssignmentResponse struct {
	MethodAssignmentID uuid.UUID          `json:"method_assignment_id"`
	MethodPackageID    uuid.UUID          `json:"method_package_id"`
	TeacherID          uuid.UUID          `json:"teacher_id"`
	GrantedBy          *uuid.UUID         `json:"granted_by,omitempty"`
	Deadline           *string            `json:"deadline,omitempty"`
	CanEdit            bool               `json:"can_edit"`
	Status             m.AssignmentStatus `json:"status"`
	Notes              string             `json:"notes"`
	CreatedAt          time.Time          `json:"created_at"`
}

func NewAssignmentResponse(src *m.MethodAssignmentModel) AssignmentResponse {
	resp := AssignmentResponse{
		MethodAssignmentID: src.MethodAssignmentID,
		MethodPackageID:    src.MethodAssignmentPackageID,
		TeacherID:          src.MethodAssignmentTeacherID,
		GrantedBy:          src.MethodAssignmentGrantedBy,
		CanEdit:            src.MethodAssignmentCanEdit,
		Status:             src.MethodAssignmentStatus,
		Notes:              src.MethodAssignmentNotes,
		CreatedAt:          src.MethodAssignmentCreatedAt,
	}
	if src.MethodAssignmentDeadline != nil {
		d := src.MethodAssignmentDeadline.Format(layoutDate)
		resp.Deadline = &d
	}
	return resp
}

func NewAssignmentResponses(src []m.MethodAssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(src))
	for i := range src {
		out = append(out, NewAssignmentResponse(&src[i]))
	}
	return out
}

type CommentResponse struct {
	CommentID    uuid.UUID  `json:"comment_id"`
	AssignmentID uuid.UUID  `json:"assignment_id"`
	SenderID     *uuid.UUID `json:"sender_id,omitempty"`
	SenderRole   string     `json:"sender_role"`
	SenderName   string     `json:"sender_name"`
	Text         string     `json:"text"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewCommentResponse(src *m.MethodAssignmentCommentModel) CommentResponse {
	return CommentResponse{
		CommentID:    src.MethodAssignmentCommentID,
		AssignmentID: src.MethodAssignmentCommentAssignmentID,
		SenderID:     src.MethodAssignmentCommentSenderID,
		SenderRole:   src.MethodAssignmentCommentSenderRole,
		SenderName:   src.MethodAssignmentCommentSenderName,
		Text:         src.MethodAssignmentCommentText,
		CreatedAt:    src.MethodAssignmentCommentCreatedAt,
	}
}

type BulkAssignResponse struct {
	TeacherID                 uuid.UUID            `json:"teacher"`
	SubjectID                 uuid.UUID            `json:"subject"`
	StartMethodNumber         int                  `json:"start_method_number"`
	CreatedCount              int                  `json:"created_count"`
	ExistingMethodsSkipped    []int                `json:"existing_methods_skipped"`
	MissingMethodNumbers      []int                `json:"missing_method_numbers"`
	PlaceholderMethodsCreated []int                `json:"placeholder_methods_created"`
	Created                   []AssignmentResponse `json:"created"`
}
