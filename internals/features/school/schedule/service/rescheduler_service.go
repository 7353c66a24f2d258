// file: internals/features/school/schedule/service/rescheduler_service.go
package service

import (
	"time"

	"gorm.io/gorm"

	m "educentr_backend/internals/features/school/schedule/model"
)

/* =======================================================
   Holiday rescheduler

   Runs synchronously when a holiday is created: every slot
   on the holiday's date (scoped to its group when set) is
   pushed forward by whole weeks until it lands on a date
   with no holiday and no same-time slot of the same group.
   ======================================================= */

// MaxRescheduleAttempts bounds the weekly probe.
const MaxRescheduleAttempts = 52

// NextFreeDate probes start+7d, start+14d, ... up to maxTries candidates and
// returns the first one the conflict probe accepts. ok=false means every
// candidate conflicted; callers leave the slot unmoved in that case — an
// accepted edge case, not an error.
func NextFreeDate(start time.Time, maxTries int, conflict func(time.Time) bool) (time.Time, bool) {
	candidate := start.AddDate(0, 0, 7)
	for i := 0; i < maxTries; i++ {
		if !conflict(candidate) {
			return candidate, true
		}
		candidate = candidate.AddDate(0, 0, 7)
	}
	return time.Time{}, false
}

// RescheduleForHoliday shifts all colliding slots. Runs inside the caller's
// transaction so the holiday insert and every slot move commit together.
func (s *Service) RescheduleForHoliday(tx *gorm.DB, holiday *m.HolidayModel) error {
	q := tx.Where("schedule_slot_lesson_date = ?", holiday.HolidayDate)
	if holiday.HolidayGroupID != nil {
		q = q.Where("schedule_slot_group_id = ?", *holiday.HolidayGroupID)
	}

	var slots []m.ScheduleSlotModel
	if err := q.Find(&slots).Error; err != nil {
		return err
	}

	for i := range slots {
		slot := &slots[i]
		if slot.ScheduleSlotLessonDate == nil {
			continue
		}

		var probeErr error
		target, ok := NextFreeDate(*slot.ScheduleSlotLessonDate, MaxRescheduleAttempts, func(candidate time.Time) bool {
			conflicted, err := s.dateConflicts(tx, slot, candidate)
			if err != nil {
				probeErr = err
				return true
			}
			return conflicted
		})
		if probeErr != nil {
			return probeErr
		}
		if !ok {
			// no free week within a year: leave the slot where it is
			continue
		}

		movedFrom := *slot.ScheduleSlotLessonDate
		updates := map[string]interface{}{
			"schedule_slot_lesson_date":     target,
			"schedule_slot_weekday":         MondayIndexedWeekday(target),
			"schedule_slot_moved_from_date": movedFrom,
		}
		if err := tx.Model(slot).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

// dateConflicts reports whether the candidate date is blocked for the slot:
// a holiday scoped to the slot's group, a global holiday, or another slot of
// the same group at the same start time.
func (s *Service) dateConflicts(tx *gorm.DB, slot *m.ScheduleSlotModel, candidate time.Time) (bool, error) {
	var holidayCount int64
	if err := tx.Model(&m.HolidayModel{}).
		Where("holiday_date = ?", candidate).
		Where("holiday_group_id = ? OR holiday_group_id IS NULL", slot.ScheduleSlotGroupID).
		Count(&holidayCount).Error; err != nil {
		return false, err
	}
	if holidayCount > 0 {
		return true, nil
	}

	var slotCount int64
	if err := tx.Model(&m.ScheduleSlotModel{}).
		Where("schedule_slot_group_id = ?", slot.ScheduleSlotGroupID).
		Where("schedule_slot_lesson_date = ?", candidate).
		Where("schedule_slot_start_time = ?", slot.ScheduleSlotStartTime).
		Where("schedule_slot_id <> ?", slot.ScheduleSlotID).
		Count(&slotCount).Error; err != nil {
		return false, err
	}
	return slotCount > 0, nil
}
