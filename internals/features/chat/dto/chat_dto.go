// file: internals/features/chat/dto/chat_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "educentr_backend/internals/features/chat/model"
)

type CreateMessageRequest struct {
	Text           string `json:"text"`
	AttachmentURL  string `json:"attachment_url" validate:"omitempty,url"`
	AttachmentName string `json:"attachment_name" validate:"omitempty,max=255"`
}

func (r *CreateMessageRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// IsEmpty: a message needs text or an attachment.
func (r *CreateMessageRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == "" && strings.TrimSpace(r.AttachmentURL) == ""
}

type ChatRoomResponse struct {
	ChatRoomID uuid.UUID `json:"chat_room_id"`
	GroupID    uuid.UUID `json:"group_id"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewChatRoomResponse(src *m.ChatRoomModel) ChatRoomResponse {
	return ChatRoomResponse{
		ChatRoomID: src.ChatRoomID,
		GroupID:    src.ChatRoomGroupID,
		Type:       src.ChatRoomType,
		CreatedAt:  src.ChatRoomCreatedAt,
	}
}

type MessageResponse struct {
	MessageID      uuid.UUID  `json:"message_id"`
	GroupID        uuid.UUID  `json:"group_id"`
	RoomID         *uuid.UUID `json:"room_id,omitempty"`
	SenderType     string     `json:"sender_type"`
	SenderName     string     `json:"sender_name"`
	Text           string     `json:"text"`
	AttachmentURL  string     `json:"attachment_url,omitempty"`
	AttachmentName string     `json:"attachment_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewMessageResponse(src *m.MessageModel) MessageResponse {
	return MessageResponse{
		MessageID:      src.MessageID,
		GroupID:        src.MessageGroupID,
		RoomID:         src.MessageRoomID,
		SenderType:     src.MessageSenderType,
		SenderName:     src.MessageSenderName,
		Text:           src.MessageText,
		AttachmentURL:  src.MessageAttachmentURL,
		AttachmentName: src.MessageAttachmentName,
		CreatedAt:      src.MessageCreatedAt,
	}
}
