// file: internals/features/school/schedule/dto/schedule_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/school/schedule/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

const layoutDate = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	return time.Parse(layoutDate, s)
}

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid time, expected HH:mm or HH:mm:ss")
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateScheduleRequest struct {
	GroupID       string  `json:"group_id" validate:"required,uuid4"`
	LessonTopicID *string `json:"lesson_topic_id,omitempty" validate:"omitempty,uuid4"`
	SubjectID     *string `json:"subject_id,omitempty" validate:"omitempty,uuid4"`

	LessonDate string `json:"lesson_date" validate:"required"` // YYYY-MM-DD
	StartTime  string `json:"start_time" validate:"required"`  // HH:mm / HH:mm:ss

	StartMethodNumber int `json:"start_method_number" validate:"omitempty,min=1,max=12"`
	LessonNumber      int `json:"lesson_number" validate:"omitempty,min=1"`
	OccurrencesCount  int `json:"occurrences_count" validate:"omitempty,min=1,max=52"`
}

func (r *CreateScheduleRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type UpdateScheduleSlotRequest struct {
	LessonDate      *string `json:"lesson_date,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	LessonNumber    *int    `json:"lesson_number,omitempty" validate:"omitempty,min=1"`
	LessonTopicID   *string `json:"lesson_topic_id,omitempty" validate:"omitempty,uuid4"`
	MethodPackageID *string `json:"method_package_id,omitempty" validate:"omitempty,uuid4"`

	// All three together trigger a cascade reassignment of method packages
	// to every later slot of the group.
	ApplyFromLessonNumber *int    `json:"apply_from_lesson_number,omitempty" validate:"omitempty,min=1"`
	SubjectID             *string `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	StartMethodNumber     *int    `json:"start_method_number,omitempty" validate:"omitempty,min=1,max=12"`
}

func (r *UpdateScheduleSlotRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// ApplyPatch applies non-nil plain fields; the cascade triple is handled by
// the controller.
func (r *UpdateScheduleSlotRequest) ApplyPatch(dst *m.ScheduleSlotModel) error {
	if r.LessonDate != nil {
		d, err := parseDate(*r.LessonDate)
		if err != nil {
			return err
		}
		dst.ScheduleSlotLessonDate = &d
	}
	if r.StartTime != nil {
		t, err := parseClock(*r.StartTime)
		if err != nil {
			return err
		}
		dst.ScheduleSlotStartTime = t
	}
	if r.LessonNumber != nil {
		dst.ScheduleSlotLessonNumber = *r.LessonNumber
	}
	if r.LessonTopicID != nil {
		idp, err := uuidPtrFromString(r.LessonTopicID)
		if err != nil {
			return err
		}
		dst.ScheduleSlotLessonTopicID = idp
	}
	if r.MethodPackageID != nil {
		idp, err := uuidPtrFromString(r.MethodPackageID)
		if err != nil {
			return err
		}
		dst.ScheduleSlotMethodPackageID = idp
	}
	return nil
}

// WantsCascade reports whether the cascade triple is fully present.
func (r *UpdateScheduleSlotRequest) WantsCascade() bool {
	return r.ApplyFromLessonNumber != nil && r.SubjectID != nil && r.StartMethodNumber != nil
}

type CreateHolidayRequest struct {
	Date    string  `json:"date" validate:"required"` // YYYY-MM-DD
	Title   string  `json:"title"`
	GroupID *string `json:"group_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateHolidayRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateHolidayRequest) ApplyToModel(dst *m.HolidayModel) error {
	d, err := parseDate(r.Date)
	if err != nil {
		return err
	}
	dst.HolidayDate = d
	dst.HolidayTitle = strings.TrimSpace(r.Title)
	if dst.HolidayTitle == "" {
		dst.HolidayTitle = "Праздничный день"
	}
	groupID, err := uuidPtrFromString(r.GroupID)
	if err != nil {
		return err
	}
	dst.HolidayGroupID = groupID
	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type ScheduleSlotResponse struct {
	ScheduleSlotID  uuid.UUID  `json:"schedule_slot_id"`
	GroupID         uuid.UUID  `json:"group_id"`
	LessonTopicID   *uuid.UUID `json:"lesson_topic_id,omitempty"`
	LessonDate      *string    `json:"lesson_date,omitempty"`
	Weekday         int        `json:"weekday"`
	LessonNumber    int        `json:"lesson_number"`
	StartTime       string     `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	MethodPackageID *uuid.UUID `json:"method_package_id,omitempty"`
	MovedFromDate   *string    `json:"moved_from_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewScheduleSlotResponse(src *m.ScheduleSlotModel) ScheduleSlotResponse {
	resp := ScheduleSlotResponse{
		ScheduleSlotID:  src.ScheduleSlotID,
		GroupID:         src.ScheduleSlotGroupID,
		LessonTopicID:   src.ScheduleSlotLessonTopicID,
		Weekday:         src.ScheduleSlotWeekday,
		LessonNumber:    src.ScheduleSlotLessonNumber,
		StartTime:       src.ScheduleSlotStartTime.Format("15:04:05"),
		DurationMinutes: src.ScheduleSlotDurationMinutes,
		MethodPackageID: src.ScheduleSlotMethodPackageID,
		CreatedAt:       src.ScheduleSlotCreatedAt,
	}
	if src.ScheduleSlotLessonDate != nil {
		d := src.ScheduleSlotLessonDate.Format(layoutDate)
		resp.LessonDate = &d
	}
	if src.ScheduleSlotMovedFromDate != nil {
		d := src.ScheduleSlotMovedFromDate.Format(layoutDate)
		resp.MovedFromDate = &d
	}
	return resp
}

type HolidayResponse struct {
	HolidayID uuid.UUID  `json:"holiday_id"`
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewHolidayResponse(src *m.HolidayModel) HolidayResponse {
	return HolidayResponse{
		HolidayID: src.HolidayID,
		Date:      src.HolidayDate.Format(layoutDate),
		Title:     src.HolidayTitle,
		GroupID:   src.HolidayGroupID,
		CreatedAt: src.HolidayCreatedAt,
	}
}
