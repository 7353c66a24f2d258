// file: internals/features/school/groups/controller/group_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chatService "educentr_backend/internals/features/chat/service"
	d "educentr_backend/internals/features/school/groups/dto"
	m "educentr_backend/internals/features/school/groups/model"
	helper "educentr_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

/* =========================
   CRUD
   ========================= */

func (ctl *GroupController) List(c *fiber.Ctx) error {
	var rows []m.GroupModel
	if err := ctl.DB.Order("group_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.GroupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewGroupResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	group, err := ctl.loadGroup(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "ok", d.NewGroupResponse(group))
}

// Create also provisions the group's chat rooms in the same transaction.
func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req d.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var group m.GroupModel
	req.ApplyToModel(&group)

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		return chatService.EnsureRoomsForGroup(tx, group.GroupID)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "group created", d.NewGroupResponse(&group))
}

func (ctl *GroupController) Update(c *fiber.Ctx) error {
	group, err := ctl.loadGroup(c)
	if err != nil {
		return err
	}

	var req d.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(group)

	if err := ctl.DB.Save(group).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "group updated", d.NewGroupResponse(group))
}

func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	group, err := ctl.loadGroup(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(group).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (ctl *GroupController) loadGroup(c *fiber.Ctx) (*m.GroupModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var group m.GroupModel
	if err := ctl.DB.Where("group_id = ?", id).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "group not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &group, nil
}
