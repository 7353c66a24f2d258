// file: internals/features/school/schedule/model/schedule_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ScheduleSlotModel — table schedule_slots

   One scheduled lesson occurrence for a group. Slots are
   created in pairs by the generator; lesson_date is null
   for pure weekday-template slots.
   ======================================================= */

type ScheduleSlotModel struct {
	ScheduleSlotID uuid.UUID `json:"schedule_slot_id" gorm:"type:uuid;primaryKey;column:schedule_slot_id;default:gen_random_uuid()"`

	ScheduleSlotGroupID       uuid.UUID  `json:"schedule_slot_group_id" gorm:"type:uuid;not null;index;column:schedule_slot_group_id"`
	ScheduleSlotLessonTopicID *uuid.UUID `json:"schedule_slot_lesson_topic_id,omitempty" gorm:"type:uuid;column:schedule_slot_lesson_topic_id"`

	ScheduleSlotLessonDate *time.Time `json:"schedule_slot_lesson_date,omitempty" gorm:"type:date;index;column:schedule_slot_lesson_date"`

	// 0=Monday .. 6=Sunday, derived from lesson_date when present.
	ScheduleSlotWeekday      int       `json:"schedule_slot_weekday" gorm:"type:int;not null;column:schedule_slot_weekday"`
	ScheduleSlotLessonNumber int       `json:"schedule_slot_lesson_number" gorm:"type:smallint;not null;column:schedule_slot_lesson_number"`
	ScheduleSlotStartTime    time.Time `json:"schedule_slot_start_time" gorm:"type:time;not null;column:schedule_slot_start_time"`

	ScheduleSlotDurationMinutes int `json:"schedule_slot_duration_minutes" gorm:"type:smallint;not null;default:90;column:schedule_slot_duration_minutes"`

	ScheduleSlotMethodPackageID *uuid.UUID `json:"schedule_slot_method_package_id,omitempty" gorm:"type:uuid;column:schedule_slot_method_package_id"`

	// Set by the holiday rescheduler: the date the slot used to occupy.
	ScheduleSlotMovedFromDate *time.Time `json:"schedule_slot_moved_from_date,omitempty" gorm:"type:date;column:schedule_slot_moved_from_date"`

	ScheduleSlotCreatedAt time.Time      `json:"schedule_slot_created_at" gorm:"column:schedule_slot_created_at;not null;autoCreateTime"`
	ScheduleSlotUpdatedAt time.Time      `json:"schedule_slot_updated_at" gorm:"column:schedule_slot_updated_at;not null;autoUpdateTime"`
	ScheduleSlotDeletedAt gorm.DeletedAt `json:"schedule_slot_deleted_at" gorm:"column:schedule_slot_deleted_at;index"`
}

func (ScheduleSlotModel) TableName() string {
	return "schedule_slots"
}

/* =======================================================
   HolidayModel — table holidays

   A holiday date, optionally scoped to one group (null =
   all groups). Creating one shifts same-day slots.
   ======================================================= */

type HolidayModel struct {
	HolidayID      uuid.UUID  `json:"holiday_id" gorm:"type:uuid;primaryKey;column:holiday_id;default:gen_random_uuid()"`
	HolidayDate    time.Time  `json:"holiday_date" gorm:"type:date;not null;uniqueIndex;column:holiday_date"`
	HolidayTitle   string     `json:"holiday_title" gorm:"type:varchar(180);not null;default:'Праздничный день';column:holiday_title"`
	HolidayGroupID *uuid.UUID `json:"holiday_group_id,omitempty" gorm:"type:uuid;column:holiday_group_id"`

	HolidayCreatedAt time.Time      `json:"holiday_created_at" gorm:"column:holiday_created_at;not null;autoCreateTime"`
	HolidayDeletedAt gorm.DeletedAt `json:"holiday_deleted_at" gorm:"column:holiday_deleted_at;index"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}
