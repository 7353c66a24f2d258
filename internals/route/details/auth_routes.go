// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "educentr_backend/internals/features/users/user/controller"
	authMiddleware "educentr_backend/internals/middlewares/auth"
)

/* ===================== AUTH ===================== */

// AuthRoutes mounts login/logout without auth and /api/u/me behind the JWT.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	api := app.Group("/api")
	api.Post("/login", ctl.Login)
	api.Post("/logout", ctl.Logout)

	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	user.Get("/me", ctl.Me)
}
