// file: internals/features/chat/controller/chat_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "educentr_backend/internals/features/chat/dto"
	m "educentr_backend/internals/features/chat/model"
	chatService "educentr_backend/internals/features/chat/service"
	helper "educentr_backend/internals/helpers"
)

const messagePageSize = 100

type ChatController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db, Validate: validator.New()}
}

func chatUser(c *fiber.Ctx) (uuid.UUID, string, error) {
	rawID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", errors.New("user id missing from token")
	}
	role, _ := c.Locals("userRole").(string)
	return userID, role, nil
}

/* =========================
   Rooms
   ========================= */

// ListRooms shows the rooms the caller may enter across their accessible
// groups, provisioning missing rooms lazily.
func (ctl *ChatController) ListRooms(c *fiber.Ctx) error {
	userID, role, err := chatUser(c)
	if err != nil {
		return helper.Error(c, http.StatusUnauthorized, err.Error())
	}

	allowed := chatService.AllowedRoomTypes(role)
	if len(allowed) == 0 {
		return helper.Error(c, http.StatusForbidden, "Чат недоступен для этой роли.")
	}

	groupIDs, err := chatService.AccessibleGroupIDs(ctl.DB, userID, role)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(groupIDs) == 0 {
		return helper.Success(c, "ok", []d.ChatRoomResponse{})
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, groupID := range groupIDs {
			if err := chatService.EnsureRoomsForGroup(tx, groupID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rooms []m.ChatRoomModel
	if err := ctl.DB.
		Where("chat_room_group_id IN ?", groupIDs).
		Where("chat_room_type IN ?", allowed).
		Order("chat_room_group_id, chat_room_type").
		Find(&rooms).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.ChatRoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, d.NewChatRoomResponse(&rooms[i]))
	}
	return helper.Success(c, "ok", out)
}

/* =========================
   Messages
   ========================= */

func (ctl *ChatController) loadRoomForUser(c *fiber.Ctx) (*m.ChatRoomModel, uuid.UUID, string, error) {
	userID, role, err := chatUser(c)
	if err != nil {
		return nil, uuid.Nil, "", fiber.NewError(http.StatusUnauthorized, err.Error())
	}

	roomID, err := uuid.Parse(strings.TrimSpace(c.Params("room_id")))
	if err != nil {
		return nil, uuid.Nil, "", fiber.NewError(http.StatusBadRequest, "room_id invalid")
	}

	var room m.ChatRoomModel
	if err := ctl.DB.Where("chat_room_id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, "", fiber.NewError(http.StatusNotFound, "chat room not found")
		}
		return nil, uuid.Nil, "", fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	if !chatService.RoleMayEnter(role, room.ChatRoomType) {
		return nil, uuid.Nil, "", fiber.NewError(http.StatusForbidden, "Доступ в этот чат запрещен.")
	}
	groupIDs, err := chatService.AccessibleGroupIDs(ctl.DB, userID, role)
	if err != nil {
		return nil, uuid.Nil, "", fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	accessible := false
	for _, id := range groupIDs {
		if id == room.ChatRoomGroupID {
			accessible = true
			break
		}
	}
	if !accessible {
		return nil, uuid.Nil, "", fiber.NewError(http.StatusForbidden, "Доступ в этот чат запрещен.")
	}
	return &room, userID, role, nil
}

func (ctl *ChatController) ListMessages(c *fiber.Ctx) error {
	room, _, _, err := ctl.loadRoomForUser(c)
	if err != nil {
		return err
	}

	var rows []m.MessageModel
	if err := ctl.DB.
		Where("message_room_id = ?", room.ChatRoomID).
		Order("message_created_at DESC").
		Limit(messagePageSize).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.MessageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewMessageResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

func (ctl *ChatController) CreateMessage(c *fiber.Ctx) error {
	room, userID, role, err := ctl.loadRoomForUser(c)
	if err != nil {
		return err
	}

	var req d.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.IsEmpty() {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed",
			fiber.Map{"text": "Сообщение не может быть пустым."})
	}

	fallbackName, _ := c.Locals("user_name").(string)
	senderType, senderName := chatService.SenderMeta(ctl.DB, userID, role, fallbackName)

	roomID := room.ChatRoomID
	msg := m.MessageModel{
		MessageGroupID:        room.ChatRoomGroupID,
		MessageRoomID:         &roomID,
		MessageSenderType:     senderType,
		MessageSenderName:     senderName,
		MessageText:           strings.TrimSpace(req.Text),
		MessageAttachmentURL:  strings.TrimSpace(req.AttachmentURL),
		MessageAttachmentName: strings.TrimSpace(req.AttachmentName),
	}
	if err := ctl.DB.Create(&msg).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "message sent", d.NewMessageResponse(&msg))
}
