// file: internals/features/school/curriculum/controller/method_package_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "educentr_backend/internals/features/users/user/model"
)

func TestMayBrowsePackagesHidesContentFromFamilies(t *testing.T) {
	assert.True(t, mayBrowsePackages(userModel.RoleAdmin))
	assert.True(t, mayBrowsePackages(userModel.RoleMethodist))
	assert.True(t, mayBrowsePackages(userModel.RoleManager))
	assert.True(t, mayBrowsePackages(userModel.RoleTeacher))

	assert.False(t, mayBrowsePackages(userModel.RoleParent))
	assert.False(t, mayBrowsePackages(userModel.RoleStudent))
	assert.False(t, mayBrowsePackages(""))
}
