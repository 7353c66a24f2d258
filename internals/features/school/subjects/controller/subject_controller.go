// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "educentr_backend/internals/features/school/subjects/dto"
	m "educentr_backend/internals/features/school/subjects/model"
	helper "educentr_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

/* =========================
   Subjects
   ========================= */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var rows []m.SubjectModel
	if err := ctl.DB.Order("subject_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSubjectResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	subject := m.SubjectModel{SubjectName: strings.TrimSpace(req.Name)}
	if err := ctl.DB.Create(&subject).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "subject created", d.NewSubjectResponse(&subject))
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var subject m.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "subject not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Name != nil {
		subject.SubjectName = strings.TrimSpace(*req.Name)
	}
	if err := ctl.DB.Save(&subject).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "subject updated", d.NewSubjectResponse(&subject))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Where("subject_id = ?", id).Delete(&m.SubjectModel{}).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

/* =========================
   Lesson topics
   ========================= */

func (ctl *SubjectController) ListTopics(c *fiber.Ctx) error {
	db := ctl.DB.Model(&m.LessonTopicModel{})
	if subjectID := strings.TrimSpace(c.Query("subject_id")); subjectID != "" {
		if _, err := uuid.Parse(subjectID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "subject_id invalid")
		}
		db = db.Where("lesson_topic_subject_id = ?", subjectID)
	}

	var rows []m.LessonTopicModel
	if err := db.Order("lesson_topic_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.LessonTopicResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewLessonTopicResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *SubjectController) CreateTopic(c *fiber.Ctx) error {
	var req d.CreateLessonTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var topic m.LessonTopicModel
	if err := req.ApplyToModel(&topic); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(&topic).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "lesson topic created", d.NewLessonTopicResponse(&topic))
}

func (ctl *SubjectController) UpdateTopic(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var topic m.LessonTopicModel
	if err := ctl.DB.Where("lesson_topic_id = ?", id).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "lesson topic not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.UpdateLessonTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(&topic); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&topic).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "lesson topic updated", d.NewLessonTopicResponse(&topic))
}

func (ctl *SubjectController) DeleteTopic(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Where("lesson_topic_id = ?", id).Delete(&m.LessonTopicModel{}).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}
