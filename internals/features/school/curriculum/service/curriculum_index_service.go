// file: internals/features/school/curriculum/service/curriculum_index_service.go
package service

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "educentr_backend/internals/features/school/curriculum/model"
)

/* =======================================================
   Curriculum index

   Orders a subject's method packages by (method_number,
   creation time, id) and exposes cyclic offset lookup. The
   schedule generator walks this order round-robin, wrapping
   past the end indefinitely.
   ======================================================= */

var (
	// ErrNoPackages: the subject has no method packages at all.
	ErrNoPackages = errors.New("subject has no method packages")
	// ErrUnknownNumber: no package with the requested starting number.
	ErrUnknownNumber = errors.New("subject has no method package with this number")
)

type Index struct {
	Packages []m.MethodPackageModel
	StartIdx int
}

// SortPackages orders packages by method_number ascending, tie-broken by
// creation order.
func SortPackages(pkgs []m.MethodPackageModel) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		if pkgs[i].MethodPackageNumber != pkgs[j].MethodPackageNumber {
			return pkgs[i].MethodPackageNumber < pkgs[j].MethodPackageNumber
		}
		if !pkgs[i].MethodPackageCreatedAt.Equal(pkgs[j].MethodPackageCreatedAt) {
			return pkgs[i].MethodPackageCreatedAt.Before(pkgs[j].MethodPackageCreatedAt)
		}
		return pkgs[i].MethodPackageID.String() < pkgs[j].MethodPackageID.String()
	})
}

// NewIndex builds an index over the given packages starting at the package
// numbered startNumber.
func NewIndex(pkgs []m.MethodPackageModel, startNumber int) (*Index, error) {
	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}
	SortPackages(pkgs)
	startIdx := -1
	for i := range pkgs {
		if pkgs[i].MethodPackageNumber == startNumber {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, ErrUnknownNumber
	}
	return &Index{Packages: pkgs, StartIdx: startIdx}, nil
}

// AtOffset returns the package at cyclic offset k from the starting package:
// order[(start + k) mod len]. Wraps indefinitely.
func (ix *Index) AtOffset(k int) *m.MethodPackageModel {
	if len(ix.Packages) == 0 {
		return nil
	}
	return &ix.Packages[(ix.StartIdx+k)%len(ix.Packages)]
}

// LoadIndex fetches a subject's packages and builds the cyclic index.
func LoadIndex(db *gorm.DB, subjectID uuid.UUID, startNumber int) (*Index, error) {
	var pkgs []m.MethodPackageModel
	if err := db.
		Where("method_package_subject_id = ?", subjectID).
		Order("method_package_number ASC, method_package_created_at ASC").
		Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return NewIndex(pkgs, startNumber)
}
