// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "educentr_backend/internals/features/school/assignments/controller"
	curriculumController "educentr_backend/internals/features/school/curriculum/controller"
	groupController "educentr_backend/internals/features/school/groups/controller"
	peopleController "educentr_backend/internals/features/school/people/controller"
	scheduleController "educentr_backend/internals/features/school/schedule/controller"
	subjectController "educentr_backend/internals/features/school/subjects/controller"
)

/* ===================== ADMIN (management portal) ===================== */

// SchoolAdminRoutes mounts everything the admin/methodist/manager portal
// edits: groups, people, subjects, schedules and holidays.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	groups := groupController.NewGroupController(db)
	g := r.Group("/groups")
	g.Get("/", groups.List)
	g.Get("/:id", groups.GetByID)
	g.Post("/", groups.Create)
	g.Put("/:id", groups.Update)
	g.Delete("/:id", groups.Delete)

	teachers := peopleController.NewTeacherController(db)
	t := r.Group("/teachers")
	t.Get("/", teachers.List)
	t.Get("/:id", teachers.GetByID)
	t.Post("/", teachers.Create)
	t.Put("/:id", teachers.Update)
	t.Delete("/:id", teachers.Delete)

	parents := peopleController.NewParentController(db)
	p := r.Group("/parents")
	p.Get("/", parents.List)
	p.Get("/:id", parents.GetByID)
	p.Post("/", parents.Create)
	p.Put("/:id", parents.Update)
	p.Delete("/:id", parents.Delete)

	students := peopleController.NewStudentController(db)
	s := r.Group("/students")
	s.Get("/", students.List)
	s.Get("/:id", students.GetByID)
	s.Post("/", students.Create)
	s.Put("/:id", students.Update)
	s.Delete("/:id", students.Delete)

	subjects := subjectController.NewSubjectController(db)
	sub := r.Group("/subjects")
	sub.Get("/", subjects.List)
	sub.Post("/", subjects.Create)
	sub.Put("/:id", subjects.Update)
	sub.Delete("/:id", subjects.Delete)

	topics := r.Group("/lesson-topics")
	topics.Get("/", subjects.ListTopics)
	topics.Post("/", subjects.CreateTopic)
	topics.Put("/:id", subjects.UpdateTopic)
	topics.Delete("/:id", subjects.DeleteTopic)

	schedule := scheduleController.NewScheduleController(db)
	slots := r.Group("/schedule-slots")
	slots.Get("/", schedule.ListSlots)
	slots.Post("/", schedule.CreateSchedule)
	slots.Put("/:id", schedule.UpdateSlot)
	slots.Delete("/:id", schedule.DeleteSlot)

	holidays := scheduleController.NewHolidayController(db)
	h := r.Group("/holidays")
	h.Get("/", holidays.List)
	h.Post("/", holidays.Create)
	h.Delete("/:id", holidays.Delete)
}

/* ===================== CURRICULUM ===================== */

// CurriculumAdminRoutes: full method-package CRUD for management.
func CurriculumAdminRoutes(r fiber.Router, db *gorm.DB) {
	packages := curriculumController.NewMethodPackageController(db)
	pkg := r.Group("/method-packages")
	pkg.Get("/", packages.List)
	pkg.Get("/:id", packages.GetByID)
	pkg.Post("/", packages.Create)
	pkg.Put("/:id", packages.Update)
	pkg.Delete("/:id", packages.Delete)
}

// CurriculumUserRoutes: read + gated edit for the teacher portal. The update
// handler itself checks the unlocked-assignment rule for teachers.
func CurriculumUserRoutes(r fiber.Router, db *gorm.DB) {
	packages := curriculumController.NewMethodPackageController(db)
	pkg := r.Group("/method-packages")
	pkg.Get("/", packages.List)
	pkg.Get("/:id", packages.GetByID)
	pkg.Put("/:id", packages.Update)
}

/* ===================== ASSIGNMENTS ===================== */

// AssignmentAdminRoutes: granting, bulk granting and review transitions.
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	assignments := assignmentController.NewMethodAssignmentController(db)
	a := r.Group("/method-assignments")
	a.Get("/", assignments.List)
	a.Post("/", assignments.Create)
	a.Post("/bulk-assign", assignments.BulkAssign)
	a.Put("/:id", assignments.Update)
	a.Delete("/:id", assignments.Delete)
	a.Post("/:id/approve", assignments.Approve)
	a.Post("/:id/rework", assignments.Rework)
	a.Get("/:id/comments", assignments.ListComments)
	a.Post("/:id/comments", assignments.CreateComment)
}

// AssignmentUserRoutes: the teacher's own list, submit and comments.
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	assignments := assignmentController.NewMethodAssignmentController(db)
	a := r.Group("/method-assignments")
	a.Get("/", assignments.List)
	a.Put("/:id", assignments.Update)
	a.Post("/:id/submit", assignments.Submit)
	a.Get("/:id/comments", assignments.ListComments)
	a.Post("/:id/comments", assignments.CreateComment)
}

/* ===================== SCHEDULE (READ) ===================== */

// ScheduleUserRoutes: read-only slot and holiday listing for every portal.
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	schedule := scheduleController.NewScheduleController(db)
	r.Get("/schedule-slots", schedule.ListSlots)

	holidays := scheduleController.NewHolidayController(db)
	r.Get("/holidays", holidays.List)
}
