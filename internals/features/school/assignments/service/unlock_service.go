// file: internals/features/school/assignments/service/unlock_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "educentr_backend/internals/features/school/assignments/model"
)

/* =======================================================
   Sequential unlock

   Per (teacher, subject) at most one assignment may be
   editable at a time. The stream is ordered by method
   number then id; a single left-to-right scan claims the
   one open slot. can_edit is derived state and this scan is
   its only writer outside the explicit rework reset.
   ======================================================= */

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// AssignmentState is the scan's view of one assignment.
type AssignmentState struct {
	Status  m.AssignmentStatus
	CanEdit bool
}

// DesiredEditFlags computes the can_edit flag for each assignment in stream
// order:
//   - done: locked, does not claim the slot
//   - review: locked, claims the slot (nothing after it opens until resolved)
//   - todo / in_progress: editable only if the slot is still unclaimed
//   - anything else: flag left as is
func DesiredEditFlags(states []AssignmentState) []bool {
	desired := make([]bool, len(states))
	slotClaimed := false
	for i, st := range states {
		switch st.Status {
		case m.StatusDone:
			desired[i] = false
		case m.StatusReview:
			desired[i] = false
			slotClaimed = true
		case m.StatusTodo, m.StatusInProgress:
			if !slotClaimed {
				desired[i] = true
				slotClaimed = true
			} else {
				desired[i] = false
			}
		default:
			desired[i] = st.CanEdit
		}
	}
	return desired
}

// RecomputeUnlock rescans the teacher's assignment stream for one subject and
// writes only the rows whose can_edit actually changes.
func (s *Service) RecomputeUnlock(tx *gorm.DB, teacherID, subjectID uuid.UUID) error {
	var assignments []m.MethodAssignmentModel
	if err := tx.
		Joins("JOIN method_packages ON method_packages.method_package_id = method_assignments.method_assignment_package_id").
		Where("method_assignments.method_assignment_teacher_id = ?", teacherID).
		Where("method_packages.method_package_subject_id = ?", subjectID).
		Order("method_packages.method_package_number ASC, method_assignments.method_assignment_id ASC").
		Find(&assignments).Error; err != nil {
		return err
	}

	states := make([]AssignmentState, len(assignments))
	for i := range assignments {
		states[i] = AssignmentState{
			Status:  assignments[i].MethodAssignmentStatus,
			CanEdit: assignments[i].MethodAssignmentCanEdit,
		}
	}

	desired := DesiredEditFlags(states)
	for i := range assignments {
		if assignments[i].MethodAssignmentCanEdit == desired[i] {
			continue
		}
		if err := tx.Model(&assignments[i]).
			Update("method_assignment_can_edit", desired[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
