// file: internals/features/school/assignments/service/unlock_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "educentr_backend/internals/features/school/assignments/model"
)

func statuses(ss ...m.AssignmentStatus) []AssignmentState {
	out := make([]AssignmentState, 0, len(ss))
	for _, s := range ss {
		out = append(out, AssignmentState{Status: s})
	}
	return out
}

func TestDesiredEditFlagsOpensFirstUnit(t *testing.T) {
	got := DesiredEditFlags(statuses(m.StatusTodo, m.StatusTodo, m.StatusTodo))
	assert.Equal(t, []bool{true, false, false}, got)
}

func TestDesiredEditFlagsSkipsDoneUnits(t *testing.T) {
	got := DesiredEditFlags(statuses(m.StatusDone, m.StatusDone, m.StatusTodo, m.StatusTodo))
	assert.Equal(t, []bool{false, false, true, false}, got)
}

func TestDesiredEditFlagsReviewBlocksLaterUnits(t *testing.T) {
	// a unit waiting for review claims the slot without being editable
	got := DesiredEditFlags(statuses(m.StatusDone, m.StatusReview, m.StatusTodo))
	assert.Equal(t, []bool{false, false, false}, got)
}

func TestDesiredEditFlagsInProgressClaims(t *testing.T) {
	got := DesiredEditFlags(statuses(m.StatusInProgress, m.StatusTodo))
	assert.Equal(t, []bool{true, false}, got)
}

func TestDesiredEditFlagsUnknownStatusKeepsFlag(t *testing.T) {
	states := []AssignmentState{
		{Status: "archived", CanEdit: true},
		{Status: m.StatusTodo},
	}
	got := DesiredEditFlags(states)
	assert.Equal(t, []bool{true, true}, got)
}

func TestDesiredEditFlagsAtMostOneEditable(t *testing.T) {
	cases := [][]AssignmentState{
		statuses(m.StatusTodo, m.StatusInProgress, m.StatusTodo, m.StatusDone),
		statuses(m.StatusDone, m.StatusDone, m.StatusDone),
		statuses(m.StatusReview, m.StatusReview, m.StatusTodo),
		statuses(),
	}
	for _, states := range cases {
		editable := 0
		for _, open := range DesiredEditFlags(states) {
			if open {
				editable++
			}
		}
		assert.LessOrEqual(t, editable, 1)
	}
}

func TestPlanBulkNumbers(t *testing.T) {
	toCreate, skipped := PlanBulkNumbers(1, map[int]bool{5: true})
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9, 10, 11, 12}, toCreate)
	assert.Equal(t, []int{5}, skipped)
}

func TestPlanBulkNumbersFromMidCourse(t *testing.T) {
	toCreate, skipped := PlanBulkNumbers(10, nil)
	assert.Equal(t, []int{10, 11, 12}, toCreate)
	assert.Empty(t, skipped)
}

func TestPlanBulkNumbersAllAssigned(t *testing.T) {
	assigned := map[int]bool{}
	for n := 1; n <= 12; n++ {
		assigned[n] = true
	}
	toCreate, skipped := PlanBulkNumbers(1, assigned)
	assert.Empty(t, toCreate)
	assert.Len(t, skipped, 12)
}
