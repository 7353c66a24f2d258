// file: internals/features/school/curriculum/controller/method_package_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "educentr_backend/internals/features/school/assignments/model"
	d "educentr_backend/internals/features/school/curriculum/dto"
	m "educentr_backend/internals/features/school/curriculum/model"
	peopleModel "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
	helper "educentr_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type MethodPackageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMethodPackageController(db *gorm.DB) *MethodPackageController {
	return &MethodPackageController{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

/* =========================
   List / Detail
   ========================= */

// mayBrowsePackages: lesson content is staff material; parent and student
// portals never see it.
func mayBrowsePackages(role string) bool {
	switch role {
	case userModel.RoleAdmin, userModel.RoleMethodist, userModel.RoleManager, userModel.RoleTeacher:
		return true
	}
	return false
}

func (ctl *MethodPackageController) List(c *fiber.Ctx) error {
	if role, _ := c.Locals("userRole").(string); !mayBrowsePackages(role) {
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	db := ctl.DB.Model(&m.MethodPackageModel{})

	if subjectID := strings.TrimSpace(c.Query("subject_id")); subjectID != "" {
		if _, err := uuid.Parse(subjectID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "subject_id invalid")
		}
		db = db.Where("method_package_subject_id = ?", subjectID)
	}

	var rows []m.MethodPackageModel
	if err := db.
		Order("method_package_number ASC, method_package_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.MethodPackageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewMethodPackageResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *MethodPackageController) GetByID(c *fiber.Ctx) error {
	if role, _ := c.Locals("userRole").(string); !mayBrowsePackages(role) {
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	pkg, err := ctl.loadPackage(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "ok", d.NewMethodPackageResponse(pkg))
}

func (ctl *MethodPackageController) loadPackage(c *fiber.Ctx) (*m.MethodPackageModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var pkg m.MethodPackageModel
	if err := ctl.DB.Where("method_package_id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "method package not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &pkg, nil
}

/* =========================
   Create / Update / Delete
   ========================= */

func (ctl *MethodPackageController) Create(c *fiber.Ctx) error {
	var req d.CreateMethodPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var pkg m.MethodPackageModel
	if err := req.ApplyToModel(&pkg); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(&pkg).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "method package created", d.NewMethodPackageResponse(&pkg))
}

// Update is open to management; a teacher may edit only packages they hold an
// unlocked assignment for.
func (ctl *MethodPackageController) Update(c *fiber.Ctx) error {
	pkg, err := ctl.loadPackage(c)
	if err != nil {
		return err
	}

	role, _ := c.Locals("userRole").(string)
	switch role {
	case userModel.RoleAdmin, userModel.RoleMethodist, userModel.RoleManager:
	case userModel.RoleTeacher:
		ok, err := ctl.teacherMayEdit(c, pkg.MethodPackageID)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		if !ok {
			return helper.Error(c, http.StatusForbidden, "Методпакет пока закрыт. Завершите предыдущий.")
		}
	default:
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	var req d.UpdateMethodPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(pkg); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(pkg).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "method package updated", d.NewMethodPackageResponse(pkg))
}

func (ctl *MethodPackageController) teacherMayEdit(c *fiber.Ctx, packageID uuid.UUID) (bool, error) {
	rawID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return false, nil
	}
	var teacher peopleModel.TeacherModel
	if err := ctl.DB.Where("teacher_user_id = ?", userID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	var count int64
	err = ctl.DB.Model(&assignmentModel.MethodAssignmentModel{}).
		Where("method_assignment_package_id = ?", packageID).
		Where("method_assignment_teacher_id = ?", teacher.TeacherID).
		Where("method_assignment_can_edit = ?", true).
		Count(&count).Error
	return count > 0, err
}

func (ctl *MethodPackageController) Delete(c *fiber.Ctx) error {
	pkg, err := ctl.loadPackage(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(pkg).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}
