// file: internals/features/chat/model/chat_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Room types & sender types
   ======================================================= */

const (
	RoomParents    = "parents"
	RoomStudents   = "students"
	RoomManagement = "management"
)

var AllRoomTypes = []string{RoomParents, RoomStudents, RoomManagement}

func IsValidRoomType(t string) bool {
	for _, rt := range AllRoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

const (
	SenderTeacher = "teacher"
	SenderManager = "manager"
	SenderParent  = "parent"
	SenderStudent = "student"
	SenderSystem  = "system"
)

/* =======================================================
   ChatRoomModel — table chat_rooms
   ======================================================= */

type ChatRoomModel struct {
	ChatRoomID      uuid.UUID `json:"chat_room_id" gorm:"type:uuid;primaryKey;column:chat_room_id;default:gen_random_uuid()"`
	ChatRoomGroupID uuid.UUID `json:"chat_room_group_id" gorm:"type:uuid;not null;column:chat_room_group_id;uniqueIndex:uq_chat_rooms_group_type"`
	ChatRoomType    string    `json:"chat_room_type" gorm:"type:varchar(16);not null;column:chat_room_type;uniqueIndex:uq_chat_rooms_group_type"`

	ChatRoomCreatedAt time.Time      `json:"chat_room_created_at" gorm:"column:chat_room_created_at;not null;autoCreateTime"`
	ChatRoomDeletedAt gorm.DeletedAt `json:"chat_room_deleted_at" gorm:"column:chat_room_deleted_at;index"`
}

func (ChatRoomModel) TableName() string {
	return "chat_rooms"
}

/* =======================================================
   MessageModel — table messages
   ======================================================= */

type MessageModel struct {
	MessageID      uuid.UUID  `json:"message_id" gorm:"type:uuid;primaryKey;column:message_id;default:gen_random_uuid()"`
	MessageGroupID uuid.UUID  `json:"message_group_id" gorm:"type:uuid;not null;index;column:message_group_id"`
	MessageRoomID  *uuid.UUID `json:"message_room_id,omitempty" gorm:"type:uuid;index;column:message_room_id"`

	MessageSenderType string `json:"message_sender_type" gorm:"type:varchar(10);not null;column:message_sender_type"`
	MessageSenderName string `json:"message_sender_name" gorm:"type:varchar(120);not null;column:message_sender_name"`
	MessageText       string `json:"message_text" gorm:"type:text;column:message_text"`

	// Attachment delivery/storage details live outside the core; only the
	// reference survives here.
	MessageAttachmentURL  string `json:"message_attachment_url" gorm:"type:text;column:message_attachment_url"`
	MessageAttachmentName string `json:"message_attachment_name" gorm:"type:varchar(255);column:message_attachment_name"`

	MessageCreatedAt time.Time `json:"message_created_at" gorm:"column:message_created_at;not null;autoCreateTime"`
}

func (MessageModel) TableName() string {
	return "messages"
}
