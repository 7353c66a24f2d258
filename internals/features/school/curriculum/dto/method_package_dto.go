// file: internals/features/school/curriculum/dto/method_package_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "educentr_backend/internals/features/school/curriculum/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateMethodPackageRequest struct {
	SubjectID     *string        `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	MethodNumber  int            `json:"method_number" validate:"required,min=1,max=12"`
	Title         string         `json:"title" validate:"required,max=120"`
	Description   string         `json:"description"`
	MaterialURL   string         `json:"material_url" validate:"omitempty,url"`
	ContentBlocks datatypes.JSON `json:"content_blocks,omitempty"`
}

func (r *CreateMethodPackageRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateMethodPackageRequest) ApplyToModel(dst *m.MethodPackageModel) error {
	if r.SubjectID != nil && strings.TrimSpace(*r.SubjectID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.SubjectID))
		if err != nil {
			return errors.New("subject_id: invalid uuid")
		}
		dst.MethodPackageSubjectID = &id
	}
	dst.MethodPackageNumber = r.MethodNumber
	dst.MethodPackageTitle = strings.TrimSpace(r.Title)
	dst.MethodPackageDescription = strings.TrimSpace(r.Description)
	dst.MethodPackageMaterialURL = strings.TrimSpace(r.MaterialURL)
	if len(r.ContentBlocks) > 0 {
		dst.MethodPackageContentBlocks = r.ContentBlocks
	}
	return nil
}

type UpdateMethodPackageRequest struct {
	SubjectID     *string        `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	MethodNumber  *int           `json:"method_number,omitempty" validate:"omitempty,min=1,max=12"`
	Title         *string        `json:"title,omitempty" validate:"omitempty,max=120"`
	Description   *string        `json:"description,omitempty"`
	MaterialURL   *string        `json:"material_url,omitempty" validate:"omitempty,url"`
	ContentBlocks datatypes.JSON `json:"content_blocks,omitempty"`
}

func (r *UpdateMethodPackageRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *UpdateMethodPackageRequest) ApplyPatch(dst *m.MethodPackageModel) error {
	if r.SubjectID != nil {
		if strings.TrimSpace(*r.SubjectID) == "" {
			dst.MethodPackageSubjectID = nil
		} else {
			id, err := uuid.Parse(strings.TrimSpace(*r.SubjectID))
			if err != nil {
				return errors.New("subject_id: invalid uuid")
			}
			dst.MethodPackageSubjectID = &id
		}
	}
	if r.MethodNumber != nil {
		dst.MethodPackageNumber = *r.MethodNumber
	}
	if r.Title != nil {
		dst.MethodPackageTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		dst.MethodPackageDescription = strings.TrimSpace(*r.Description)
	}
	if r.MaterialURL != nil {
		dst.MethodPackageMaterialURL = strings.TrimSpace(*r.MaterialURL)
	}
	if len(r.ContentBlocks) > 0 {
		dst.MethodPackageContentBlocks = r.ContentBlocks
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type MethodPackageResponse struct {
	MethodPackageID uuid.UUID      `json:"method_package_id"`
	SubjectID       *uuid.UUID     `json:"subject_id,omitempty"`
	MethodNumber    int            `json:"method_number"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	MaterialURL     string         `json:"material_url"`
	ContentBlocks   datatypes.JSON `json:"content_blocks,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func NewMethodPackageResponse(src *m.MethodPackageModel) MethodPackageResponse {
	return MethodPackageResponse{
		MethodPackageID: src.MethodPackageID,
		SubjectID:       src.MethodPackageSubjectID,
		MethodNumber:    src.MethodPackageNumber,
		Title:           src.MethodPackageTitle,
		Description:     src.MethodPackageDescription,
		MaterialURL:     src.MethodPackageMaterialURL,
		ContentBlocks:   src.MethodPackageContentBlocks,
		CreatedAt:       src.MethodPackageCreatedAt,
		UpdatedAt:       src.MethodPackageUpdatedAt,
	}
}
