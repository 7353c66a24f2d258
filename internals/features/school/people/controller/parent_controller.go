// file: internals/features/school/people/controller/parent_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "educentr_backend/internals/features/school/people/dto"
	m "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
	userService "educentr_backend/internals/features/users/user/service"
	helper "educentr_backend/internals/helpers"
)

type ParentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validate: validator.New()}
}

func (ctl *ParentController) List(c *fiber.Ctx) error {
	var rows []m.ParentModel
	if err := ctl.DB.Order("parent_last_name ASC, parent_first_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.ParentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewParentResponse(&rows[i], usernameForUserID(ctl.DB, rows[i].ParentUserID)))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *ParentController) GetByID(c *fiber.Ctx) error {
	parent, err := ctl.loadParent(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "ok", d.NewParentResponse(parent, usernameForUserID(ctl.DB, parent.ParentUserID)))
}

func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req d.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var parent m.ParentModel
	req.ApplyToModel(&parent)

	var username string
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		provisioned, err := userService.ProvisionUser(
			tx, parent.ParentLastName, parent.ParentFirstName, parent.ParentEmail, userModel.RoleParent)
		if err != nil {
			return err
		}
		userID := provisioned.User.UserID
		parent.ParentUserID = &userID
		parent.ParentInitialPassword = provisioned.PlainPassword
		username = provisioned.User.UserName
		return tx.Create(&parent).Error
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "parent created", d.NewParentResponse(&parent, username))
}

func (ctl *ParentController) Update(c *fiber.Ctx) error {
	parent, err := ctl.loadParent(c)
	if err != nil {
		return err
	}

	var req d.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(parent)

	if err := ctl.DB.Save(parent).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "parent updated", d.NewParentResponse(parent, usernameForUserID(ctl.DB, parent.ParentUserID)))
}

func (ctl *ParentController) Delete(c *fiber.Ctx) error {
	parent, err := ctl.loadParent(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(parent).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (ctl *ParentController) loadParent(c *fiber.Ctx) (*m.ParentModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var parent m.ParentModel
	if err := ctl.DB.Where("parent_id = ?", id).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "parent not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &parent, nil
}
