// file: internals/features/school/curriculum/service/curriculum_index_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "educentr_backend/internals/features/school/curriculum/model"
)

func pkgWithNumber(number int, createdAt time.Time) m.MethodPackageModel {
	return m.MethodPackageModel{
		MethodPackageID:        uuid.New(),
		MethodPackageNumber:    number,
		MethodPackageCreatedAt: createdAt,
	}
}

func TestSortPackagesByNumberThenCreation(t *testing.T) {
	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	older := pkgWithNumber(2, base)
	newer := pkgWithNumber(2, base.Add(time.Hour))
	first := pkgWithNumber(1, base.Add(2*time.Hour))

	pkgs := []m.MethodPackageModel{newer, first, older}
	SortPackages(pkgs)

	assert.Equal(t, first.MethodPackageID, pkgs[0].MethodPackageID)
	assert.Equal(t, older.MethodPackageID, pkgs[1].MethodPackageID)
	assert.Equal(t, newer.MethodPackageID, pkgs[2].MethodPackageID)
}

func TestNewIndexErrors(t *testing.T) {
	_, err := NewIndex(nil, 1)
	assert.ErrorIs(t, err, ErrNoPackages)

	pkgs := []m.MethodPackageModel{pkgWithNumber(1, time.Now()), pkgWithNumber(2, time.Now())}
	_, err = NewIndex(pkgs, 7)
	assert.ErrorIs(t, err, ErrUnknownNumber)
}

func TestAtOffsetWrapsAround(t *testing.T) {
	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	pkgs := []m.MethodPackageModel{
		pkgWithNumber(1, base),
		pkgWithNumber(2, base),
		pkgWithNumber(3, base),
	}

	ix, err := NewIndex(pkgs, 2)
	require.NoError(t, err)

	// start=2 → order 2,3,1,2,3,1,...
	assert.Equal(t, 2, ix.AtOffset(0).MethodPackageNumber)
	assert.Equal(t, 3, ix.AtOffset(1).MethodPackageNumber)
	assert.Equal(t, 1, ix.AtOffset(2).MethodPackageNumber)
	assert.Equal(t, 2, ix.AtOffset(3).MethodPackageNumber)

	// a full cycle lands back on the start
	assert.Equal(t, ix.AtOffset(0).MethodPackageID, ix.AtOffset(len(pkgs)).MethodPackageID)
}

func TestNewIndexDuplicateNumberPicksEarliest(t *testing.T) {
	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	early := pkgWithNumber(1, base)
	late := pkgWithNumber(1, base.Add(time.Minute))

	ix, err := NewIndex([]m.MethodPackageModel{late, early}, 1)
	require.NoError(t, err)
	assert.Equal(t, early.MethodPackageID, ix.AtOffset(0).MethodPackageID)
}
