// file: internals/features/school/schedule/controller/holiday_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "educentr_backend/internals/features/school/schedule/dto"
	m "educentr_backend/internals/features/school/schedule/model"
	scheduleService "educentr_backend/internals/features/school/schedule/service"
	helper "educentr_backend/internals/helpers"
)

type HolidayController struct {
	DB       *gorm.DB
	Service  *scheduleService.Service
	Validate *validator.Validate
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{
		DB:       db,
		Service:  scheduleService.NewService(db),
		Validate: validator.New(),
	}
}

/* =========================
   Create — triggers rescheduling
   ========================= */

func (ctl *HolidayController) Create(c *fiber.Ctx) error {
	var req d.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var holiday m.HolidayModel
	if err := req.ApplyToModel(&holiday); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	// Holiday insert and every slot move commit together.
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&holiday).Error; err != nil {
			return err
		}
		return ctl.Service.RescheduleForHoliday(tx, &holiday)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "holiday created", d.NewHolidayResponse(&holiday))
}

/* =========================
   List / Delete
   ========================= */

func (ctl *HolidayController) List(c *fiber.Ctx) error {
	var rows []m.HolidayModel
	if err := ctl.DB.Order("holiday_date ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.HolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewHolidayResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *HolidayController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var existing m.HolidayModel
	if err := ctl.DB.Where("holiday_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "holiday not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}
