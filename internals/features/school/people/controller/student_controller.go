// file: internals/features/school/people/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "educentr_backend/internals/features/school/people/dto"
	m "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
	userService "educentr_backend/internals/features/users/user/service"
	helper "educentr_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

func loadParentsByIDs(tx *gorm.DB, ids []uuid.UUID) ([]m.ParentModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var parents []m.ParentModel
	if err := tx.Where("parent_id IN ?", ids).Find(&parents).Error; err != nil {
		return nil, err
	}
	if len(parents) != len(ids) {
		return nil, errors.New("parent_ids: unknown parent")
	}
	return parents, nil
}

/* =========================
   CRUD
   ========================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	db := ctl.DB.Preload("Parents")
	if groupID := c.Query("group_id"); groupID != "" {
		if _, err := uuid.Parse(groupID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "group_id invalid")
		}
		db = db.Where("student_group_id = ?", groupID)
	}

	var rows []m.StudentModel
	if err := db.Order("student_last_name ASC, student_first_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewStudentResponse(&rows[i], usernameForUserID(ctl.DB, rows[i].StudentUserID)))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "ok", d.NewStudentResponse(student, usernameForUserID(ctl.DB, student.StudentUserID)))
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	parentIDs, err := req.ParentUUIDs()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var student m.StudentModel
	if err := req.ApplyToModel(&student); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var username string
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		provisioned, err := userService.ProvisionUser(
			tx, student.StudentLastName, student.StudentFirstName, "", userModel.RoleStudent)
		if err != nil {
			return err
		}
		userID := provisioned.User.UserID
		student.StudentUserID = &userID
		student.StudentInitialPassword = provisioned.PlainPassword
		username = provisioned.User.UserName

		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		parents, err := loadParentsByIDs(tx, parentIDs)
		if err != nil {
			return err
		}
		if len(parents) > 0 {
			return tx.Model(&student).Association("Parents").Replace(parents)
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	student.Parents = nil
	_ = ctl.DB.Preload("Parents").Where("student_id = ?", student.StudentID).First(&student)
	return helper.SuccessWithCode(c, http.StatusCreated, "student created", d.NewStudentResponse(&student, username))
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(student); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Parents").Save(student).Error; err != nil {
			return err
		}
		if req.ParentIDs == nil {
			return nil
		}
		ids, err := d.ParseUUIDList(*req.ParentIDs, "parent_ids")
		if err != nil {
			return err
		}
		parents, err := loadParentsByIDs(tx, ids)
		if err != nil {
			return err
		}
		return tx.Model(student).Association("Parents").Replace(parents)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	student.Parents = nil
	_ = ctl.DB.Preload("Parents").Where("student_id = ?", student.StudentID).First(student)
	return helper.Success(c, "student updated", d.NewStudentResponse(student, usernameForUserID(ctl.DB, student.StudentUserID)))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(student).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (ctl *StudentController) loadStudent(c *fiber.Ctx) (*m.StudentModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var student m.StudentModel
	if err := ctl.DB.Preload("Parents").Where("student_id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "student not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &student, nil
}
