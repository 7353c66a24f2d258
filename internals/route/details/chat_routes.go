// file: internals/route/details/chat_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatController "educentr_backend/internals/features/chat/controller"
)

/* ===================== CHAT ===================== */

// ChatUserRoutes: room listing and messaging for every logged-in role. Access
// per room is enforced inside the controller (role matrix + group scope).
func ChatUserRoutes(r fiber.Router, db *gorm.DB) {
	chat := chatController.NewChatController(db)
	c := r.Group("/chat")
	c.Get("/rooms", chat.ListRooms)
	c.Get("/rooms/:room_id/messages", chat.ListMessages)
	c.Post("/rooms/:room_id/messages", chat.CreateMessage)
}
