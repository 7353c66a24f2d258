// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "educentr_backend/internals/features/users/user/model"
	authMiddleware "educentr_backend/internals/middlewares/auth"
	routeDetails "educentr_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	// ===================== ADMIN (management portal) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			"Доступ только для сотрудников школы.",
			userModel.RoleAdmin, userModel.RoleMethodist, userModel.RoleManager,
		),
	)

	// Review transitions and granting stay behind a tighter gate inside the
	// assignment handlers (admin/methodist only).

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.ScheduleUserRoutes(private, db)

	log.Println("[INFO] Mounting Curriculum routes...")
	routeDetails.CurriculumAdminRoutes(admin, db)
	routeDetails.CurriculumUserRoutes(private, db)

	log.Println("[INFO] Mounting Assignment routes...")
	routeDetails.AssignmentAdminRoutes(admin, db)
	routeDetails.AssignmentUserRoutes(private, db)

	log.Println("[INFO] Mounting Chat routes...")
	routeDetails.ChatUserRoutes(private, db)
}
