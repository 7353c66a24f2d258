// file: internals/features/school/schedule/service/generator_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	curriculumModel "educentr_backend/internals/features/school/curriculum/model"
	curriculumService "educentr_backend/internals/features/school/curriculum/service"
)

func testIndex(t *testing.T, numbers []int, startNumber int) *curriculumService.Index {
	t.Helper()
	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	pkgs := make([]curriculumModel.MethodPackageModel, 0, len(numbers))
	for i, n := range numbers {
		pkgs = append(pkgs, curriculumModel.MethodPackageModel{
			MethodPackageID:        uuid.New(),
			MethodPackageNumber:    n,
			MethodPackageCreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	ix, err := curriculumService.NewIndex(pkgs, startNumber)
	require.NoError(t, err)
	return ix
}

func TestMondayIndexedWeekday(t *testing.T) {
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, MondayIndexedWeekday(monday))
	assert.Equal(t, 1, MondayIndexedWeekday(monday.AddDate(0, 0, 1)))
	assert.Equal(t, 6, MondayIndexedWeekday(monday.AddDate(0, 0, 6)))
}

func TestSecondStartIsNinetyMinutesLater(t *testing.T) {
	start := time.Date(0, 1, 1, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, start.Add(90*time.Minute), SecondStart(start))
}

func TestBuildSlotPlanSixOccurrences(t *testing.T) {
	ix := testIndex(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 1)
	startDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) // Monday
	startTime := time.Date(0, 1, 1, 16, 0, 0, 0, time.UTC)

	in := GenerateInput{
		StartDate:    startDate,
		StartTime:    startTime,
		LessonNumber: 1,
		Occurrences:  6,
	}
	plan := BuildSlotPlan(in, ix)
	require.Len(t, plan, 12)

	for idx := 0; idx < 6; idx++ {
		first := plan[idx*2]
		second := plan[idx*2+1]

		wantDate := startDate.AddDate(0, 0, 7*idx)
		assert.Equal(t, wantDate, first.Date)
		assert.Equal(t, wantDate, second.Date)
		assert.Equal(t, 0, first.Weekday) // every occurrence stays on Monday

		assert.Equal(t, 1+idx*2, first.LessonNumber)
		assert.Equal(t, 2+idx*2, second.LessonNumber)

		assert.Equal(t, startTime, first.StartTime)
		assert.Equal(t, startTime.Add(90*time.Minute), second.StartTime)
		assert.Equal(t, LessonDurationMinutes, first.DurationMinutes)
		assert.Equal(t, LessonDurationMinutes, second.DurationMinutes)
	}

	// packages are dealt in order 1..12
	for i, p := range plan {
		require.NotNil(t, p.MethodPackageID)
		assert.Equal(t, ix.Packages[i].MethodPackageID, *p.MethodPackageID)
	}
}

func TestBuildSlotPlanCyclesShortCurriculum(t *testing.T) {
	// three packages, starting from number 2: order is 2,3,1,2,3,1,...
	ix := testIndex(t, []int{1, 2, 3}, 2)
	in := GenerateInput{
		StartDate:    time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
		StartTime:    time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		LessonNumber: 5,
		Occurrences:  3,
	}
	plan := BuildSlotPlan(in, ix)
	require.Len(t, plan, 6)

	wantNumbers := []int{2, 3, 1, 2, 3, 1}
	for i, p := range plan {
		require.NotNil(t, p.MethodPackageID)
		assert.Equal(t, ix.AtOffset(i).MethodPackageID, *p.MethodPackageID, "slot %d", i)
		assert.Equal(t, wantNumbers[i], ix.AtOffset(i).MethodPackageNumber)
	}

	assert.Equal(t, 5, plan[0].LessonNumber)
	assert.Equal(t, 10, plan[5].LessonNumber)
}

func TestNextFreeDate(t *testing.T) {
	start := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

	t.Run("first candidate free", func(t *testing.T) {
		got, ok := NextFreeDate(start, MaxRescheduleAttempts, func(time.Time) bool { return false })
		require.True(t, ok)
		assert.Equal(t, start.AddDate(0, 0, 7), got)
	})

	t.Run("skips conflicting week", func(t *testing.T) {
		blocked := start.AddDate(0, 0, 7)
		got, ok := NextFreeDate(start, MaxRescheduleAttempts, func(c time.Time) bool {
			return c.Equal(blocked)
		})
		require.True(t, ok)
		assert.Equal(t, start.AddDate(0, 0, 14), got)
	})

	t.Run("gives up after max tries", func(t *testing.T) {
		tries := 0
		_, ok := NextFreeDate(start, MaxRescheduleAttempts, func(time.Time) bool {
			tries++
			return true
		})
		assert.False(t, ok)
		assert.Equal(t, MaxRescheduleAttempts, tries)
	})
}
