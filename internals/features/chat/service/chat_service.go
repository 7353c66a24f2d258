// file: internals/features/chat/service/chat_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "educentr_backend/internals/features/chat/model"
	groupModel "educentr_backend/internals/features/school/groups/model"
	peopleModel "educentr_backend/internals/features/school/people/model"
	userModel "educentr_backend/internals/features/users/user/model"
)

/* =======================================================
   Chat rooms

   Three rooms per group (parents / students / management),
   provisioned by an explicit post-creation hook when a
   group appears and lazily when listed. Role access matrix
   mirrors the portals.
   ======================================================= */

var roleChatAccess = map[string][]string{
	userModel.RoleTeacher:   {m.RoomParents, m.RoomStudents, m.RoomManagement},
	userModel.RoleManager:   {m.RoomParents, m.RoomStudents, m.RoomManagement},
	userModel.RoleParent:    {m.RoomParents, m.RoomStudents},
	userModel.RoleStudent:   {m.RoomStudents},
	userModel.RoleAdmin:     {m.RoomParents, m.RoomStudents, m.RoomManagement},
	userModel.RoleMethodist: {m.RoomParents, m.RoomStudents, m.RoomManagement},
}

// AllowedRoomTypes returns the room types a role may enter.
func AllowedRoomTypes(role string) []string {
	return roleChatAccess[role]
}

func RoleMayEnter(role, roomType string) bool {
	for _, rt := range roleChatAccess[role] {
		if rt == roomType {
			return true
		}
	}
	return false
}

// EnsureRoomsForGroup creates any missing rooms for one group.
func EnsureRoomsForGroup(tx *gorm.DB, groupID uuid.UUID) error {
	var existing []m.ChatRoomModel
	if err := tx.Where("chat_room_group_id = ?", groupID).Find(&existing).Error; err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.ChatRoomType] = true
	}
	for _, rt := range m.AllRoomTypes {
		if have[rt] {
			continue
		}
		room := m.ChatRoomModel{ChatRoomGroupID: groupID, ChatRoomType: rt}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
	}
	return nil
}

// AccessibleGroupIDs resolves the groups a user may see, by role:
// management roles see everything, a teacher their taught groups, a student
// their own group, a parent the groups of their children.
func AccessibleGroupIDs(db *gorm.DB, userID uuid.UUID, role string) ([]uuid.UUID, error) {
	switch role {
	case userModel.RoleAdmin, userModel.RoleMethodist, userModel.RoleManager:
		var ids []uuid.UUID
		err := db.Model(&groupModel.GroupModel{}).Pluck("group_id", &ids).Error
		return ids, err

	case userModel.RoleTeacher:
		var teacher peopleModel.TeacherModel
		if err := db.Where("teacher_user_id = ?", userID).First(&teacher).Error; err != nil {
			return nil, nil
		}
		var ids []uuid.UUID
		err := db.Table("teacher_groups").
			Where("teacher_id = ?", teacher.TeacherID).
			Pluck("group_id", &ids).Error
		return ids, err

	case userModel.RoleStudent:
		var student peopleModel.StudentModel
		if err := db.Where("student_user_id = ?", userID).First(&student).Error; err != nil {
			return nil, nil
		}
		return []uuid.UUID{student.StudentGroupID}, nil

	case userModel.RoleParent:
		var parent peopleModel.ParentModel
		if err := db.Where("parent_user_id = ?", userID).First(&parent).Error; err != nil {
			return nil, nil
		}
		var ids []uuid.UUID
		err := db.Model(&peopleModel.StudentModel{}).
			Distinct("student_group_id").
			Joins("JOIN student_parents ON student_parents.student_id = students.student_id").
			Where("student_parents.parent_id = ?", parent.ParentID).
			Pluck("student_group_id", &ids).Error
		return ids, err
	}
	return nil, nil
}

// SenderMeta maps the acting user to the chat sender type and display name.
func SenderMeta(db *gorm.DB, userID uuid.UUID, role, fallbackName string) (string, string) {
	switch role {
	case userModel.RoleTeacher:
		var t peopleModel.TeacherModel
		if err := db.Where("teacher_user_id = ?", userID).First(&t).Error; err == nil {
			return m.SenderTeacher, t.TeacherLastName + " " + t.TeacherFirstName
		}
	case userModel.RoleManager:
		return m.SenderManager, fallbackName
	case userModel.RoleParent:
		var p peopleModel.ParentModel
		if err := db.Where("parent_user_id = ?", userID).First(&p).Error; err == nil {
			return m.SenderParent, p.ParentLastName + " " + p.ParentFirstName
		}
	case userModel.RoleStudent:
		var st peopleModel.StudentModel
		if err := db.Where("student_user_id = ?", userID).First(&st).Error; err == nil {
			return m.SenderStudent, st.StudentLastName + " " + st.StudentFirstName
		}
	}
	return m.SenderSystem, fallbackName
}
