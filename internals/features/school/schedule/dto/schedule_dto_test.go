// file: internals/features/school/schedule/dto/schedule_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "educentr_backend/internals/features/school/schedule/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestWantsCascadeRequiresAllThreeFields(t *testing.T) {
	full := UpdateScheduleSlotRequest{
		ApplyFromLessonNumber: intPtr(3),
		SubjectID:             strPtr("6f1b0a1e-0000-4000-8000-000000000001"),
		StartMethodNumber:     intPtr(2),
	}
	assert.True(t, full.WantsCascade())

	partials := []UpdateScheduleSlotRequest{
		{},
		{ApplyFromLessonNumber: intPtr(3)},
		{ApplyFromLessonNumber: intPtr(3), SubjectID: strPtr("x")},
		{SubjectID: strPtr("x"), StartMethodNumber: intPtr(2)},
	}
	for _, req := range partials {
		assert.False(t, req.WantsCascade())
	}
}

func TestApplyPatchParsesDateAndTime(t *testing.T) {
	var slot m.ScheduleSlotModel
	req := UpdateScheduleSlotRequest{
		LessonDate: strPtr("2025-10-06"),
		StartTime:  strPtr("16:00"),
	}
	require.NoError(t, req.ApplyPatch(&slot))
	require.NotNil(t, slot.ScheduleSlotLessonDate)
	assert.Equal(t, "2025-10-06", slot.ScheduleSlotLessonDate.Format("2006-01-02"))
	assert.Equal(t, "16:00:00", slot.ScheduleSlotStartTime.Format("15:04:05"))

	bad := UpdateScheduleSlotRequest{LessonDate: strPtr("06.10.2025")}
	assert.Error(t, bad.ApplyPatch(&slot))
}

func TestCreateHolidayRequestDefaultsTitle(t *testing.T) {
	var holiday m.HolidayModel
	req := CreateHolidayRequest{Date: "2026-01-01"}
	require.NoError(t, req.ApplyToModel(&holiday))
	assert.Equal(t, "Праздничный день", holiday.HolidayTitle)
	assert.Nil(t, holiday.HolidayGroupID)
}
