// file: internals/features/school/assignments/service/workflow_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "educentr_backend/internals/features/school/assignments/model"
	curriculumModel "educentr_backend/internals/features/school/curriculum/model"
)

/* =======================================================
   Assignment workflow

   todo -> in_progress -> review -> done, with rework
   reopening review/done back to in_progress. Every
   transition appends an audit comment and re-runs the
   unlock scan for the affected (teacher, subject) pair in
   the same transaction.
   ======================================================= */

var (
	// ErrNotEditable: the teacher tried to act on a locked assignment.
	ErrNotEditable = errors.New("assignment is not editable yet, finish the previous one first")
	// ErrEmptyComment: rework requires an explanation for the teacher.
	ErrEmptyComment = errors.New("a comment is required")
)

// Actor identifies who performs a transition, for the audit trail.
type Actor struct {
	UserID uuid.UUID
	Role   string
	Name   string
}

// Submit moves an editable assignment to review. Caller has already checked
// that the actor is the assigned teacher.
func (s *Service) Submit(tx *gorm.DB, assignment *m.MethodAssignmentModel, actor Actor, comment string) error {
	if !assignment.MethodAssignmentCanEdit {
		return ErrNotEditable
	}
	assignment.MethodAssignmentStatus = m.StatusReview
	assignment.MethodAssignmentCanEdit = false
	if err := tx.Model(assignment).Updates(map[string]interface{}{
		"method_assignment_status":   m.StatusReview,
		"method_assignment_can_edit": false,
	}).Error; err != nil {
		return err
	}

	if strings.TrimSpace(comment) == "" {
		comment = "Отправлено на проверку."
	}
	if err := s.AddComment(tx, assignment.MethodAssignmentID, actor, comment); err != nil {
		return err
	}
	return s.recomputeForAssignment(tx, assignment)
}

// Approve marks the assignment done.
func (s *Service) Approve(tx *gorm.DB, assignment *m.MethodAssignmentModel, actor Actor, comment string) error {
	assignment.MethodAssignmentStatus = m.StatusDone
	assignment.MethodAssignmentCanEdit = false
	if err := tx.Model(assignment).Updates(map[string]interface{}{
		"method_assignment_status":   m.StatusDone,
		"method_assignment_can_edit": false,
	}).Error; err != nil {
		return err
	}

	if strings.TrimSpace(comment) == "" {
		comment = "Методпакет подтвержден и опубликован."
	}
	if err := s.AddComment(tx, assignment.MethodAssignmentID, actor, comment); err != nil {
		return err
	}
	return s.recomputeForAssignment(tx, assignment)
}

// Rework reopens a reviewed/done assignment. The direct can_edit=true write
// is advisory: the unlock rescan that follows is authoritative and will turn
// it back off when an earlier unit is still open.
func (s *Service) Rework(tx *gorm.DB, assignment *m.MethodAssignmentModel, actor Actor, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrEmptyComment
	}
	assignment.MethodAssignmentStatus = m.StatusInProgress
	assignment.MethodAssignmentCanEdit = true
	assignment.MethodAssignmentNotes = comment
	if err := tx.Model(assignment).Updates(map[string]interface{}{
		"method_assignment_status":   m.StatusInProgress,
		"method_assignment_can_edit": true,
		"method_assignment_notes":    comment,
	}).Error; err != nil {
		return err
	}

	text := "Отправлено на доработку.\nКомментарий методиста: " + comment
	if err := s.AddComment(tx, assignment.MethodAssignmentID, actor, text); err != nil {
		return err
	}
	return s.recomputeForAssignment(tx, assignment)
}

// AddComment appends to the audit trail. Blank text is ignored.
func (s *Service) AddComment(tx *gorm.DB, assignmentID uuid.UUID, actor Actor, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	senderID := actor.UserID
	comment := m.MethodAssignmentCommentModel{
		MethodAssignmentCommentAssignmentID: assignmentID,
		MethodAssignmentCommentSenderID:     &senderID,
		MethodAssignmentCommentSenderRole:   actor.Role,
		MethodAssignmentCommentSenderName:   actor.Name,
		MethodAssignmentCommentText:         text,
	}
	return tx.Create(&comment).Error
}

// SubjectIDForAssignment resolves the subject the assignment's package
// belongs to. Packages detached from a subject yield (Nil, false).
func SubjectIDForAssignment(tx *gorm.DB, assignment *m.MethodAssignmentModel) (uuid.UUID, bool, error) {
	var pkg curriculumModel.MethodPackageModel
	if err := tx.Where("method_package_id = ?", assignment.MethodAssignmentPackageID).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	if pkg.MethodPackageSubjectID == nil {
		return uuid.Nil, false, nil
	}
	return *pkg.MethodPackageSubjectID, true, nil
}

func (s *Service) recomputeForAssignment(tx *gorm.DB, assignment *m.MethodAssignmentModel) error {
	subjectID, ok, err := SubjectIDForAssignment(tx, assignment)
	if err != nil || !ok {
		return err
	}
	return s.RecomputeUnlock(tx, assignment.MethodAssignmentTeacherID, subjectID)
}
