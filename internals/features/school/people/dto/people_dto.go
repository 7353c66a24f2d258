// file: internals/features/school/people/dto/people_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/school/people/model"
)

// ParseUUIDList parses a request id list, attributing errors to the field.
func ParseUUIDList(raw []string, field string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.New(field + ": invalid uuid")
		}
		out = append(out, id)
	}
	return out, nil
}

/* =======================================================
   Teachers
   ======================================================= */

type CreateTeacherRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=80"`
	LastName  string   `json:"last_name" validate:"required,max=80"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone" validate:"omitempty,max=30"`
	GroupIDs  []string `json:"group_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateTeacherRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateTeacherRequest) ApplyToModel(dst *m.TeacherModel) {
	dst.TeacherFirstName = strings.TrimSpace(r.FirstName)
	dst.TeacherLastName = strings.TrimSpace(r.LastName)
	dst.TeacherEmail = strings.TrimSpace(r.Email)
	dst.TeacherPhone = strings.TrimSpace(r.Phone)
}

func (r *CreateTeacherRequest) GroupUUIDs() ([]uuid.UUID, error) {
	return ParseUUIDList(r.GroupIDs, "group_ids")
}

type UpdateTeacherRequest struct {
	FirstName *string   `json:"first_name,omitempty" validate:"omitempty,max=80"`
	LastName  *string   `json:"last_name,omitempty" validate:"omitempty,max=80"`
	Email     *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	GroupIDs  *[]string `json:"group_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

func (r *UpdateTeacherRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateTeacherRequest) ApplyPatch(dst *m.TeacherModel) {
	if r.FirstName != nil {
		dst.TeacherFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		dst.TeacherLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Email != nil {
		dst.TeacherEmail = strings.TrimSpace(*r.Email)
	}
	if r.Phone != nil {
		dst.TeacherPhone = strings.TrimSpace(*r.Phone)
	}
}

type TeacherResponse struct {
	TeacherID       uuid.UUID   `json:"teacher_id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	UserID          *uuid.UUID  `json:"user_id,omitempty"`
	Username        string      `json:"username,omitempty"`
	InitialPassword string      `json:"initial_password,omitempty"`
	GroupIDs        []uuid.UUID `json:"group_ids"`
	CreatedAt       time.Time   `json:"created_at"`
}

func NewTeacherResponse(src *m.TeacherModel, username string) TeacherResponse {
	groupIDs := make([]uuid.UUID, 0, len(src.Groups))
	for _, g := range src.Groups {
		groupIDs = append(groupIDs, g.GroupID)
	}
	return TeacherResponse{
		TeacherID:       src.TeacherID,
		FirstName:       src.TeacherFirstName,
		LastName:        src.TeacherLastName,
		Email:           src.TeacherEmail,
		Phone:           src.TeacherPhone,
		UserID:          src.TeacherUserID,
		Username:        username,
		InitialPassword: src.TeacherInitialPassword,
		GroupIDs:        groupIDs,
		CreatedAt:       src.TeacherCreatedAt,
	}
}

/* =======================================================
   Parents
   ======================================================= */

type CreateParentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func (r *CreateParentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateParentRequest) ApplyToModel(dst *m.ParentModel) {
	dst.ParentFirstName = strings.TrimSpace(r.FirstName)
	dst.ParentLastName = strings.TrimSpace(r.LastName)
	dst.ParentPhone = strings.TrimSpace(r.Phone)
	dst.ParentEmail = strings.TrimSpace(r.Email)
}

type UpdateParentRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=80"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=80"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *UpdateParentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateParentRequest) ApplyPatch(dst *m.ParentModel) {
	if r.FirstName != nil {
		dst.ParentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		dst.ParentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Phone != nil {
		dst.ParentPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		dst.ParentEmail = strings.TrimSpace(*r.Email)
	}
}

type ParentResponse struct {
	ParentID        uuid.UUID  `json:"parent_id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Username        string     `json:"username,omitempty"`
	InitialPassword string     `json:"initial_password,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewParentResponse(src *m.ParentModel, username string) ParentResponse {
	return ParentResponse{
		ParentID:        src.ParentID,
		FirstName:       src.ParentFirstName,
		LastName:        src.ParentLastName,
		Phone:           src.ParentPhone,
		Email:           src.ParentEmail,
		UserID:          src.ParentUserID,
		Username:        username,
		InitialPassword: src.ParentInitialPassword,
		CreatedAt:       src.ParentCreatedAt,
	}
}

/* =======================================================
   Students
   ======================================================= */

type CreateStudentRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=80"`
	LastName  string   `json:"last_name" validate:"required,max=80"`
	GroupID   string   `json:"group_id" validate:"required,uuid4"`
	Notes     string   `json:"notes"`
	ParentIDs []string `json:"parent_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateStudentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateStudentRequest) ApplyToModel(dst *m.StudentModel) error {
	groupID, err := uuid.Parse(strings.TrimSpace(r.GroupID))
	if err != nil {
		return errors.New("group_id: invalid uuid")
	}
	dst.StudentFirstName = strings.TrimSpace(r.FirstName)
	dst.StudentLastName = strings.TrimSpace(r.LastName)
	dst.StudentGroupID = groupID
	dst.StudentNotes = strings.TrimSpace(r.Notes)
	return nil
}

func (r *CreateStudentRequest) ParentUUIDs() ([]uuid.UUID, error) {
	return ParseUUIDList(r.ParentIDs, "parent_ids")
}

type UpdateStudentRequest struct {
	FirstName *string   `json:"first_name,omitempty" validate:"omitempty,max=80"`
	LastName  *string   `json:"last_name,omitempty" validate:"omitempty,max=80"`
	GroupID   *string   `json:"group_id,omitempty" validate:"omitempty,uuid4"`
	Notes     *string   `json:"notes,omitempty"`
	ParentIDs *[]string `json:"parent_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

func (r *UpdateStudentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateStudentRequest) ApplyPatch(dst *m.StudentModel) error {
	if r.FirstName != nil {
		dst.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		dst.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.GroupID != nil {
		groupID, err := uuid.Parse(strings.TrimSpace(*r.GroupID))
		if err != nil {
			return errors.New("group_id: invalid uuid")
		}
		dst.StudentGroupID = groupID
	}
	if r.Notes != nil {
		dst.StudentNotes = strings.TrimSpace(*r.Notes)
	}
	return nil
}

type StudentResponse struct {
	StudentID       uuid.UUID   `json:"student_id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	GroupID         uuid.UUID   `json:"group_id"`
	Notes           string      `json:"notes"`
	UserID          *uuid.UUID  `json:"user_id,omitempty"`
	Username        string      `json:"username,omitempty"`
	InitialPassword string      `json:"initial_password,omitempty"`
	ParentIDs       []uuid.UUID `json:"parent_ids"`
	CreatedAt       time.Time   `json:"created_at"`
}

func NewStudentResponse(src *m.StudentModel, username string) StudentResponse {
	parentIDs := make([]uuid.UUID, 0, len(src.Parents))
	for _, p := range src.Parents {
		parentIDs = append(parentIDs, p.ParentID)
	}
	return StudentResponse{
		StudentID:       src.StudentID,
		FirstName:       src.StudentFirstName,
		LastName:        src.StudentLastName,
		GroupID:         src.StudentGroupID,
		Notes:           src.StudentNotes,
		UserID:          src.StudentUserID,
		Username:        username,
		InitialPassword: src.StudentInitialPassword,
		ParentIDs:       parentIDs,
		CreatedAt:       src.StudentCreatedAt,
	}
}
