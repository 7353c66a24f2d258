// file: internals/features/school/people/controller/teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "educentr_backend/internals/features/school/groups/model"
	d "educentr_backend/internals/features/school/people/dto"
	m "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
	userService "educentr_backend/internals/features/users/user/service"
	helper "educentr_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

// usernameForUserID is shared by the people controllers for responses that
// echo provisioned credentials.
func usernameForUserID(db *gorm.DB, userID *uuid.UUID) string {
	if userID == nil {
		return ""
	}
	var user userModel.UserModel
	if err := db.Where("user_id = ?", *userID).First(&user).Error; err != nil {
		return ""
	}
	return user.UserName
}

func loadGroupsByIDs(tx *gorm.DB, ids []uuid.UUID) ([]groupModel.GroupModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []groupModel.GroupModel
	if err := tx.Where("group_id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, err
	}
	if len(groups) != len(ids) {
		return nil, errors.New("group_ids: unknown group")
	}
	return groups, nil
}

/* =========================
   CRUD
   ========================= */

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var rows []m.TeacherModel
	if err := ctl.DB.Preload("Groups").
		Order("teacher_last_name ASC, teacher_first_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTeacherResponse(&rows[i], usernameForUserID(ctl.DB, rows[i].TeacherUserID)))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	teacher, err := ctl.loadTeacher(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "ok", d.NewTeacherResponse(teacher, usernameForUserID(ctl.DB, teacher.TeacherUserID)))
}

// Create provisions a login user in the same transaction; the generated
// password is returned once in the response.
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	groupIDs, err := req.GroupUUIDs()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var teacher m.TeacherModel
	req.ApplyToModel(&teacher)

	var username string
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		provisioned, err := userService.ProvisionUser(
			tx, teacher.TeacherLastName, teacher.TeacherFirstName, teacher.TeacherEmail, userModel.RoleTeacher)
		if err != nil {
			return err
		}
		userID := provisioned.User.UserID
		teacher.TeacherUserID = &userID
		teacher.TeacherInitialPassword = provisioned.PlainPassword
		username = provisioned.User.UserName

		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}

		groups, err := loadGroupsByIDs(tx, groupIDs)
		if err != nil {
			return err
		}
		if len(groups) > 0 {
			return tx.Model(&teacher).Association("Groups").Replace(groups)
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	teacher.Groups = nil
	_ = ctl.DB.Preload("Groups").Where("teacher_id = ?", teacher.TeacherID).First(&teacher)
	return helper.SuccessWithCode(c, http.StatusCreated, "teacher created", d.NewTeacherResponse(&teacher, username))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	teacher, err := ctl.loadTeacher(c)
	if err != nil {
		return err
	}

	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(teacher)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Groups").Save(teacher).Error; err != nil {
			return err
		}
		if req.GroupIDs == nil {
			return nil
		}
		ids, err := d.ParseUUIDList(*req.GroupIDs, "group_ids")
		if err != nil {
			return err
		}
		groups, err := loadGroupsByIDs(tx, ids)
		if err != nil {
			return err
		}
		return tx.Model(teacher).Association("Groups").Replace(groups)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	teacher.Groups = nil
	_ = ctl.DB.Preload("Groups").Where("teacher_id = ?", teacher.TeacherID).First(teacher)
	return helper.Success(c, "teacher updated", d.NewTeacherResponse(teacher, usernameForUserID(ctl.DB, teacher.TeacherUserID)))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	teacher, err := ctl.loadTeacher(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(teacher).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (ctl *TeacherController) loadTeacher(c *fiber.Ctx) (*m.TeacherModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var teacher m.TeacherModel
	if err := ctl.DB.Preload("Groups").Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "teacher not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &teacher, nil
}
