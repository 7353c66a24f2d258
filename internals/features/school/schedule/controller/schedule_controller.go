// file: internals/features/school/schedule/controller/schedule_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumService "educentr_backend/internals/features/school/curriculum/service"
	d "educentr_backend/internals/features/school/schedule/dto"
	m "educentr_backend/internals/features/school/schedule/model"
	scheduleService "educentr_backend/internals/features/school/schedule/service"
	helper "educentr_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Service  *scheduleService.Service
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Service:  scheduleService.NewService(db),
		Validate: validator.New(),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

/* =========================
   Create (bulk generation)
   ========================= */

func (ctl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req d.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "group_id invalid")
	}
	startDate, err := time.Parse("2006-01-02", req.LessonDate)
	if err != nil {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"lesson_date": "Нужно указать дату первого занятия."})
	}
	startTime, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		if startTime, err = time.Parse("15:04:05", req.StartTime); err != nil {
			return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
				fiber.Map{"start_time": "invalid time"})
		}
	}

	in := scheduleService.GenerateInput{
		GroupID:           groupID,
		StartDate:         startDate,
		StartTime:         startTime,
		StartMethodNumber: valueOrDefault(req.StartMethodNumber, 1),
		LessonNumber:      valueOrDefault(req.LessonNumber, 1),
		Occurrences:       valueOrDefault(req.OccurrencesCount, 6),
	}
	if req.SubjectID != nil {
		id, err := uuid.Parse(*req.SubjectID)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "subject_id invalid")
		}
		in.SubjectID = &id
	}
	if req.LessonTopicID != nil {
		id, err := uuid.Parse(*req.LessonTopicID)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "lesson_topic_id invalid")
		}
		in.LessonTopicID = &id
	}

	created, err := ctl.Service.GenerateSchedule(in)
	if err != nil {
		return mapGenerateError(c, err)
	}

	out := make([]d.ScheduleSlotResponse, 0, len(created))
	for i := range created {
		out = append(out, d.NewScheduleSlotResponse(&created[i]))
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "schedule created", out)
}

func mapGenerateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduleService.ErrNoSubject):
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"subject_id": "Нужно выбрать предмет для автопривязки методпакетов."})
	case errors.Is(err, curriculumService.ErrNoPackages):
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"subject_id": "Для выбранного предмета нет методпакетов."})
	case errors.Is(err, curriculumService.ErrUnknownNumber):
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"start_method_number": "У предмета нет методпакета с этим номером."})
	case errors.Is(err, scheduleService.ErrNoLessonDate):
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"lesson_date": "Нужно указать дату первого занятия."})
	case errors.Is(err, scheduleService.ErrBadOccurrences):
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"occurrences_count": "Количество занятий должно быть от 1 до 52."})
	}
	return helper.Error(c, http.StatusInternalServerError, err.Error())
}

func valueOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

/* =========================
   List
   ========================= */

func (ctl *ScheduleController) ListSlots(c *fiber.Ctx) error {
	db := ctl.DB.Model(&m.ScheduleSlotModel{})

	if groupID := strings.TrimSpace(c.Query("group_id")); groupID != "" {
		if _, err := uuid.Parse(groupID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "group_id invalid")
		}
		db = db.Where("schedule_slot_group_id = ?", groupID)
	}

	var rows []m.ScheduleSlotModel
	if err := db.
		Order("schedule_slot_group_id, schedule_slot_lesson_date, schedule_slot_weekday, schedule_slot_start_time, schedule_slot_lesson_number").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.ScheduleSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewScheduleSlotResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

/* =========================
   Update (optionally cascading)
   ========================= */

func (ctl *ScheduleController) UpdateSlot(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var existing m.ScheduleSlotModel
	if err := ctl.DB.Where("schedule_slot_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "schedule slot not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.UpdateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(&existing); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	// Keep weekday in sync with a concrete date.
	if existing.ScheduleSlotLessonDate != nil {
		existing.ScheduleSlotWeekday = scheduleService.MondayIndexedWeekday(*existing.ScheduleSlotLessonDate)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if !req.WantsCascade() {
			return nil
		}
		subjectID, err := uuid.Parse(*req.SubjectID)
		if err != nil {
			return err
		}
		index, err := curriculumService.LoadIndex(tx, subjectID, *req.StartMethodNumber)
		if err != nil {
			return err
		}
		return ctl.Service.CascadePackages(tx, existing.ScheduleSlotGroupID, *req.ApplyFromLessonNumber, index)
	})
	if err != nil {
		if errors.Is(err, curriculumService.ErrNoPackages) || errors.Is(err, curriculumService.ErrUnknownNumber) {
			return mapGenerateError(c, err)
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "slot updated", d.NewScheduleSlotResponse(&existing))
}

/* =========================
   Delete
   ========================= */

func (ctl *ScheduleController) DeleteSlot(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Where("schedule_slot_id = ?", id).Delete(&m.ScheduleSlotModel{}).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}
