// file: internals/databases/migrate.go
package database

import (
	"log"

	chatModel "educentr_backend/internals/features/chat/model"
	assignmentModel "educentr_backend/internals/features/school/assignments/model"
	curriculumModel "educentr_backend/internals/features/school/curriculum/model"
	groupModel "educentr_backend/internals/features/school/groups/model"
	peopleModel "educentr_backend/internals/features/school/people/model"
	scheduleModel "educentr_backend/internals/features/school/schedule/model"
	subjectModel "educentr_backend/internals/features/school/subjects/model"
	userModel "educentr_backend/internals/features/users/user/model"
)

// AutoMigrate keeps the schema in sync on startup. Order matters: referenced
// tables first.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&groupModel.GroupModel{},
		&peopleModel.TeacherModel{},
		&peopleModel.ParentModel{},
		&peopleModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&curriculumModel.MethodPackageModel{},
		&subjectModel.LessonTopicModel{},
		&scheduleModel.ScheduleSlotModel{},
		&scheduleModel.HolidayModel{},
		&assignmentModel.MethodAssignmentModel{},
		&assignmentModel.MethodAssignmentCommentModel{},
		&chatModel.ChatRoomModel{},
		&chatModel.MessageModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] Auto migration failed: %v", err)
	}
	log.Println("[INFO] Auto migration finished")
}
