// file: internals/features/school/assignments/controller/method_assignment_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "educentr_backend/internals/features/users/user/model"
)

func TestIsManagementRoleGrantingRights(t *testing.T) {
	assert.True(t, isManagementRole(userModel.RoleAdmin))
	assert.True(t, isManagementRole(userModel.RoleMethodist))

	// Manager works the office portal but never grants or revokes
	// method-package assignments.
	assert.False(t, isManagementRole(userModel.RoleManager))
	assert.False(t, isManagementRole(userModel.RoleTeacher))
	assert.False(t, isManagementRole(userModel.RoleParent))
	assert.False(t, isManagementRole(userModel.RoleStudent))
	assert.False(t, isManagementRole(""))
}
