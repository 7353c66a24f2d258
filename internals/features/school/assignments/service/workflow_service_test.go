// file: internals/features/school/assignments/service/workflow_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "educentr_backend/internals/features/school/assignments/model"
)

func lockedAssignment() m.MethodAssignmentModel {
	return m.MethodAssignmentModel{
		MethodAssignmentID:      uuid.New(),
		MethodAssignmentStatus:  m.StatusTodo,
		MethodAssignmentCanEdit: false,
	}
}

func TestSubmitRejectsLockedAssignment(t *testing.T) {
	svc := &Service{}
	assignment := lockedAssignment()
	actor := Actor{UserID: uuid.New(), Role: "teacher", Name: "Иванов И."}

	err := svc.Submit(nil, &assignment, actor, "")

	assert.ErrorIs(t, err, ErrNotEditable)
	assert.Equal(t, m.StatusTodo, assignment.MethodAssignmentStatus)
	assert.False(t, assignment.MethodAssignmentCanEdit)
}

func TestReworkRequiresComment(t *testing.T) {
	svc := &Service{}
	actor := Actor{UserID: uuid.New(), Role: "methodist", Name: "Петрова А."}

	for _, comment := range []string{"", "   ", "\t\n"} {
		assignment := m.MethodAssignmentModel{
			MethodAssignmentID:      uuid.New(),
			MethodAssignmentStatus:  m.StatusReview,
			MethodAssignmentCanEdit: false,
			MethodAssignmentNotes:   "Урок 3",
		}

		err := svc.Rework(nil, &assignment, actor, comment)

		assert.ErrorIs(t, err, ErrEmptyComment)
		assert.Equal(t, m.StatusReview, assignment.MethodAssignmentStatus)
		assert.False(t, assignment.MethodAssignmentCanEdit)
		assert.Equal(t, "Урок 3", assignment.MethodAssignmentNotes)
	}
}
