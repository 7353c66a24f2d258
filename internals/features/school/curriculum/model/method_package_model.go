// file: internals/features/school/curriculum/model/method_package_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   MethodPackageModel — table method_packages

   One numbered teaching package (1..12) under a subject.
   method_number is unique within the subject.
   ======================================================= */

type MethodPackageModel struct {
	MethodPackageID uuid.UUID `json:"method_package_id" gorm:"type:uuid;primaryKey;column:method_package_id;default:gen_random_uuid()"`

	MethodPackageSubjectID *uuid.UUID `json:"method_package_subject_id,omitempty" gorm:"type:uuid;column:method_package_subject_id;uniqueIndex:uq_method_packages_subject_number"`
	MethodPackageNumber    int        `json:"method_package_number" gorm:"type:smallint;not null;default:1;column:method_package_number;uniqueIndex:uq_method_packages_subject_number"`

	MethodPackageTitle       string `json:"method_package_title" gorm:"type:varchar(120);not null;column:method_package_title"`
	MethodPackageDescription string `json:"method_package_description" gorm:"type:text;column:method_package_description"`
	MethodPackageMaterialURL string `json:"method_package_material_url" gorm:"type:text;column:method_package_material_url"`

	// Rich lesson content assembled in the methodist portal.
	MethodPackageContentBlocks datatypes.JSON `json:"method_package_content_blocks" gorm:"type:jsonb;column:method_package_content_blocks"`

	MethodPackageCreatedAt time.Time      `json:"method_package_created_at" gorm:"column:method_package_created_at;not null;autoCreateTime"`
	MethodPackageUpdatedAt time.Time      `json:"method_package_updated_at" gorm:"column:method_package_updated_at;not null;autoUpdateTime"`
	MethodPackageDeletedAt gorm.DeletedAt `json:"method_package_deleted_at" gorm:"column:method_package_deleted_at;index"`
}

func (MethodPackageModel) TableName() string {
	return "method_packages"
}

// Method numbers run 1..12 per subject.
const (
	MinMethodNumber = 1
	MaxMethodNumber = 12
)
