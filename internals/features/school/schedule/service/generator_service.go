// file: internals/features/school/schedule/service/generator_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "educentr_backend/internals/features/school/curriculum/model"
	curriculumService "educentr_backend/internals/features/school/curriculum/service"
	m "educentr_backend/internals/features/school/schedule/model"
	subjectModel "educentr_backend/internals/features/school/subjects/model"
)

/* =======================================================
   Slot generator

   Creates paired lesson slots on a weekly cadence: an 80
   minute lesson, a 10 minute break, then the second lesson
   (second start = first start + 90 min). Method packages
   are dealt round-robin from the curriculum index, two per
   occurrence.
   ======================================================= */

const (
	LessonDurationMinutes = 80
	BreakMinutes          = 10
	MinOccurrences        = 1
	MaxOccurrences        = 52
)

var (
	ErrNoLessonDate   = errors.New("lesson date of the first occurrence is required")
	ErrNoSubject      = errors.New("a subject is required to attach method packages")
	ErrBadOccurrences = errors.New("occurrences count must be between 1 and 52")
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

type GenerateInput struct {
	GroupID           uuid.UUID
	LessonTopicID     *uuid.UUID
	SubjectID         *uuid.UUID
	StartDate         time.Time
	StartTime         time.Time
	StartMethodNumber int
	LessonNumber      int
	Occurrences       int
}

// PlannedSlot is one slot of the generation plan before persistence.
type PlannedSlot struct {
	Date            time.Time
	Weekday         int
	LessonNumber    int
	StartTime       time.Time
	DurationMinutes int
	MethodPackageID *uuid.UUID
}

// MondayIndexedWeekday converts Go's Sunday-first weekday to the 0=Monday ..
// 6=Sunday convention the schedule uses.
func MondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SecondStart is the start time of the paired slot: lesson + break later.
func SecondStart(start time.Time) time.Time {
	return start.Add(time.Duration(LessonDurationMinutes+BreakMinutes) * time.Minute)
}

// BuildSlotPlan lays out 2*occurrences slots: per occurrence idx, the date
// advances 7*idx days, lesson numbers are L+2*idx and L+2*idx+1, and the
// method packages come from cyclic offsets 2*idx and 2*idx+1.
func BuildSlotPlan(in GenerateInput, index *curriculumService.Index) []PlannedSlot {
	secondStart := SecondStart(in.StartTime)
	plan := make([]PlannedSlot, 0, in.Occurrences*2)

	for idx := 0; idx < in.Occurrences; idx++ {
		date := in.StartDate.AddDate(0, 0, 7*idx)
		weekday := MondayIndexedWeekday(date)
		firstNumber := in.LessonNumber + idx*2

		first := index.AtOffset(idx * 2)
		second := index.AtOffset(idx*2 + 1)

		plan = append(plan,
			PlannedSlot{
				Date:            date,
				Weekday:         weekday,
				LessonNumber:    firstNumber,
				StartTime:       in.StartTime,
				DurationMinutes: LessonDurationMinutes,
				MethodPackageID: packageID(first),
			},
			PlannedSlot{
				Date:            date,
				Weekday:         weekday,
				LessonNumber:    firstNumber + 1,
				StartTime:       secondStart,
				DurationMinutes: LessonDurationMinutes,
				MethodPackageID: packageID(second),
			},
		)
	}
	return plan
}

// GenerateSchedule resolves the subject (directly or through the lesson
// topic), builds the plan and persists all slots in one transaction.
func (s *Service) GenerateSchedule(in GenerateInput) ([]m.ScheduleSlotModel, error) {
	if in.StartDate.IsZero() {
		return nil, ErrNoLessonDate
	}
	if in.Occurrences < MinOccurrences || in.Occurrences > MaxOccurrences {
		return nil, ErrBadOccurrences
	}

	subjectID, err := s.resolveSubjectID(in.SubjectID, in.LessonTopicID)
	if err != nil {
		return nil, err
	}

	index, err := curriculumService.LoadIndex(s.DB, subjectID, in.StartMethodNumber)
	if err != nil {
		return nil, err
	}

	plan := BuildSlotPlan(in, index)

	created := make([]m.ScheduleSlotModel, 0, len(plan))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, p := range plan {
			date := p.Date
			slot := m.ScheduleSlotModel{
				ScheduleSlotGroupID:         in.GroupID,
				ScheduleSlotLessonTopicID:   in.LessonTopicID,
				ScheduleSlotLessonDate:      &date,
				ScheduleSlotWeekday:         p.Weekday,
				ScheduleSlotLessonNumber:    p.LessonNumber,
				ScheduleSlotStartTime:       p.StartTime,
				ScheduleSlotDurationMinutes: p.DurationMinutes,
				ScheduleSlotMethodPackageID: p.MethodPackageID,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			created = append(created, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CascadePackages reassigns method packages to all slots of the group from a
// lesson number onward, walking the cyclic index in slot order.
func (s *Service) CascadePackages(tx *gorm.DB, groupID uuid.UUID, fromLessonNumber int, index *curriculumService.Index) error {
	var slots []m.ScheduleSlotModel
	if err := tx.
		Where("schedule_slot_group_id = ? AND schedule_slot_lesson_number >= ?", groupID, fromLessonNumber).
		Order("schedule_slot_lesson_number ASC, schedule_slot_lesson_date ASC, schedule_slot_start_time ASC, schedule_slot_id ASC").
		Find(&slots).Error; err != nil {
		return err
	}

	for offset := range slots {
		pkg := index.AtOffset(offset)
		if err := tx.Model(&slots[offset]).
			Update("schedule_slot_method_package_id", packageID(pkg)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) resolveSubjectID(subjectID, lessonTopicID *uuid.UUID) (uuid.UUID, error) {
	if subjectID != nil {
		var subject subjectModel.SubjectModel
		if err := s.DB.Where("subject_id = ?", *subjectID).First(&subject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrNoSubject
			}
			return uuid.Nil, err
		}
		return subject.SubjectID, nil
	}
	if lessonTopicID != nil {
		var topic subjectModel.LessonTopicModel
		if err := s.DB.Where("lesson_topic_id = ?", *lessonTopicID).First(&topic).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrNoSubject
			}
			return uuid.Nil, err
		}
		return topic.LessonTopicSubjectID, nil
	}
	return uuid.Nil, ErrNoSubject
}

func packageID(pkg *curriculumModel.MethodPackageModel) *uuid.UUID {
	if pkg == nil {
		return nil
	}
	id := pkg.MethodPackageID
	return &id
}
