// file: internals/features/school/assignments/controller/method_assignment_controller.go
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

	d "educentr_backend/internals/features/school/assignments/dto"
	m "educentr_backend/internals/features/school/assignments/model"
	assignmentService "educentr_backend/internals/features/school/assignments/service"
	peopleModel "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
	helper "educentr_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type MethodAssignmentController struct {
	DB       *gorm.DB
	Service  *assignmentService.Service
	Validate *validator.Validate
}

func NewMethodAssignmentController(db *gorm.DB) *MethodAssignmentController {
	return &MethodAssignmentController{
		DB:       db,
		Service:  assignmentService.NewService(db),
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

func actorFromLocals(c *fiber.Ctx) (assignmentService.Actor, error) {
	rawID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return assignmentService.Actor{}, errors.New("user id missing from token")
	}
	role, _ := c.Locals("userRole").(string)
	name, _ := c.Locals("user_name").(string)
	return assignmentService.Actor{UserID: userID, Role: role, Name: name}, nil
}

func isManagementRole(role string) bool {
	return role == userModel.RoleAdmin || role == userModel.RoleMethodist
}

// teacherForUser resolves the teacher profile linked to the acting account.
func (ctl *MethodAssignmentController) teacherForUser(userID uuid.UUID) (*peopleModel.TeacherModel, error) {
	var teacher peopleModel.TeacherModel
	if err := ctl.DB.Where("teacher_user_id = ?", userID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &teacher, nil
}

func (ctl *MethodAssignmentController) loadAssignment(c *fiber.Ctx) (*m.MethodAssignmentModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var assignment m.MethodAssignmentModel
	if err := ctl.DB.Where("method_assignment_id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "assignment not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &assignment, nil
}

/* =========================
   List / Create / Update / Delete
   ========================= */

// List shows every assignment to management and only the teacher's own rows
// to a teacher account.
func (ctl *MethodAssignmentController) List(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	db := ctl.DB.Model(&m.MethodAssignmentModel{})

	switch {
	case isManagementRole(actor.Role) || actor.Role == userModel.RoleManager:
		if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
			if _, err := uuid.Parse(teacherID); err != nil {
				return fiber.NewError(http.StatusBadRequest, "teacher_id invalid")
			}
			db = db.Where("method_assignment_teacher_id = ?", teacherID)
		}
	case actor.Role == userModel.RoleTeacher:
		teacher, err := ctl.teacherForUser(actor.UserID)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		if teacher == nil {
			return helper.Success(c, "ok", []d.AssignmentResponse{})
		}
		db = db.Where("method_assignment_teacher_id = ?", teacher.TeacherID)
	default:
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	var rows []m.MethodAssignmentModel
	if err := db.Order("method_assignment_created_at ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", d.NewAssignmentResponses(rows))
}

func (ctl *MethodAssignmentController) Create(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}
	if !isManagementRole(actor.Role) {
		return helper.Error(c, http.StatusForbidden, "Назначать методпакеты может методист или администратор.")
	}

	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment m.MethodAssignmentModel
	if err := req.ApplyToModel(&assignment); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	grantedBy := actor.UserID
	assignment.MethodAssignmentGrantedBy = &grantedBy

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		if assignment.MethodAssignmentNotes != "" {
			if err := ctl.Service.AddComment(tx, assignment.MethodAssignmentID, actor, assignment.MethodAssignmentNotes); err != nil {
				return err
			}
		}
		subjectID, ok, err := assignmentService.SubjectIDForAssignment(tx, &assignment)
		if err != nil || !ok {
			return err
		}
		return ctl.Service.RecomputeUnlock(tx, assignment.MethodAssignmentTeacherID, subjectID)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "assignment created", d.NewAssignmentResponse(&assignment))
}

// Update lets management change any field; a teacher may only touch status and
// notes of their own editable assignment.
func (ctl *MethodAssignmentController) Update(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	var req d.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	if !isManagementRole(actor.Role) {
		teacher, err := ctl.teacherForUser(actor.UserID)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		if teacher == nil || teacher.TeacherID != assignment.MethodAssignmentTeacherID {
			return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
		}
		if !req.TouchesOnlyTeacherFields() {
			return helper.Error(c, http.StatusForbidden, "Преподаватель может менять только статус и заметки.")
		}
		if !assignment.MethodAssignmentCanEdit {
			return helper.Error(c, http.StatusForbidden, "Методпакет пока закрыт. Завершите предыдущий.")
		}
	}

	if err := req.ApplyPatch(assignment); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(assignment).Error; err != nil {
			return err
		}
		subjectID, ok, err := assignmentService.SubjectIDForAssignment(tx, assignment)
		if err != nil || !ok {
			return err
		}
		return ctl.Service.RecomputeUnlock(tx, assignment.MethodAssignmentTeacherID, subjectID)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "assignment updated", d.NewAssignmentResponse(assignment))
}

func (ctl *MethodAssignmentController) Delete(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}
	if !isManagementRole(actor.Role) {
		return helper.Error(c, http.StatusForbidden, "Отозвать назначение может методист или администратор.")
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(assignment).Error; err != nil {
			return err
		}
		subjectID, ok, err := assignmentService.SubjectIDForAssignment(tx, assignment)
		if err != nil || !ok {
			return err
		}
		return ctl.Service.RecomputeUnlock(tx, assignment.MethodAssignmentTeacherID, subjectID)
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

/* =========================
   Bulk assign
   ========================= */

func (ctl *MethodAssignmentController) BulkAssign(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}
	if !isManagementRole(actor.Role) {
		return helper.Error(c, http.StatusForbidden, "Назначать методпакеты может методист или администратор.")
	}

	var req d.BulkAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"teacher": "Нужно выбрать преподавателя."})
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"subject": "Нужно выбрать предмет."})
	}

	var teacherCount int64
	if err := ctl.DB.Model(&peopleModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).Count(&teacherCount).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if teacherCount == 0 {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"teacher": "Преподаватель не найден."})
	}

	startNumber := req.StartMethodNumber
	if startNumber == 0 {
		startNumber = 1
	}
	status := m.StatusTodo
	if req.Status != "" {
		status = m.AssignmentStatus(req.Status)
	}

	var deadline *time.Time
	if req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.Deadline))
		if err != nil {
			return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
				fiber.Map{"deadline": "Ожидается дата в формате YYYY-MM-DD."})
		}
		deadline = &parsed
	}

	res, err := ctl.Service.BulkAssign(assignmentService.BulkAssignInput{
		TeacherID:   teacherID,
		SubjectID:   subjectID,
		StartNumber: startNumber,
		Status:      status,
		Deadline:    deadline,
		Notes:       strings.TrimSpace(req.Notes),
		GrantedBy:   actor.UserID,
		ActorRole:   actor.Role,
		ActorName:   actor.Name,
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "bulk assign finished", d.BulkAssignResponse{
		TeacherID:                 teacherID,
		SubjectID:                 subjectID,
		StartMethodNumber:         startNumber,
		CreatedCount:              len(res.Created),
		ExistingMethodsSkipped:    res.SkippedExisting,
		MissingMethodNumbers:      res.MissingMethodNumbers,
		PlaceholderMethodsCreated: res.PlaceholderMethodsCreated,
		Created:                   d.NewAssignmentResponses(res.Created),
	})
}

/* =========================
   Workflow transitions
   ========================= */

// Submit: only the assigned teacher, only when the unlock scan has opened the
// assignment.
func (ctl *MethodAssignmentController) Submit(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	teacher, err := ctl.teacherForUser(actor.UserID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if teacher == nil || teacher.TeacherID != assignment.MethodAssignmentTeacherID {
		return helper.Error(c, http.StatusForbidden, "Отправить на проверку может только назначенный преподаватель.")
	}

	var req d.TransitionRequest
	_ = c.BodyParser(&req)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return ctl.Service.Submit(tx, assignment, actor, req.CommentText())
	})
	if err != nil {
		if errors.Is(err, assignmentService.ErrNotEditable) {
			return helper.Error(c, http.StatusForbidden, "Методпакет пока закрыт. Завершите предыдущий.")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "assignment submitted", d.NewAssignmentResponse(assignment))
}

func (ctl *MethodAssignmentController) Approve(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}
	if !isManagementRole(actor.Role) {
		return helper.Error(c, http.StatusForbidden, "Подтвердить методпакет может методист или администратор.")
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	var req d.TransitionRequest
	_ = c.BodyParser(&req)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return ctl.Service.Approve(tx, assignment, actor, req.CommentText())
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "assignment approved", d.NewAssignmentResponse(assignment))
}

func (ctl *MethodAssignmentController) Rework(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}
	if !isManagementRole(actor.Role) {
		return helper.Error(c, http.StatusForbidden, "Вернуть на доработку может методист или администратор.")
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	var req d.TransitionRequest
	_ = c.BodyParser(&req)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return ctl.Service.Rework(tx, assignment, actor, req.CommentText())
	})
	if err != nil {
		if errors.Is(err, assignmentService.ErrEmptyComment) {
			return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
				fiber.Map{"comment": "Комментарий обязателен при возврате на доработку."})
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "assignment sent to rework", d.NewAssignmentResponse(assignment))
}

/* =========================
   Comments
   ========================= */

// mayDiscuss: management roles and the assigned teacher share the comment
// thread; nobody else sees it.
func (ctl *MethodAssignmentController) mayDiscuss(actor assignmentService.Actor, assignment *m.MethodAssignmentModel) (bool, error) {
	if isManagementRole(actor.Role) || actor.Role == userModel.RoleManager {
		return true, nil
	}
	if actor.Role != userModel.RoleTeacher {
		return false, nil
	}
	teacher, err := ctl.teacherForUser(actor.UserID)
	if err != nil {
		return false, err
	}
	return teacher != nil && teacher.TeacherID == assignment.MethodAssignmentTeacherID, nil
}

func (ctl *MethodAssignmentController) ListComments(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	ok, err := ctl.mayDiscuss(actor, assignment)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	var rows []m.MethodAssignmentCommentModel
	if err := ctl.DB.
		Where("method_assignment_comment_assignment_id = ?", assignment.MethodAssignmentID).
		Order("method_assignment_comment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.CommentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewCommentResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *MethodAssignmentController) CreateComment(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	assignment, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	ok, err := ctl.mayDiscuss(actor, assignment)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.Error(c, http.StatusForbidden, "Недостаточно прав.")
	}

	var req d.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"text": "Текст комментария не может быть пустым."})
	}

	if err := ctl.Service.AddComment(ctl.DB, assignment.MethodAssignmentID, actor, req.Text); err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var last m.MethodAssignmentCommentModel
	if err := ctl.DB.
		Where("method_assignment_comment_assignment_id = ?", assignment.MethodAssignmentID).
		Order("method_assignment_comment_created_at DESC").
		First(&last).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "comment added", d.NewCommentResponse(&last))
}
