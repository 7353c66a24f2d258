// file: internals/features/users/user/service/credentials_service.go
package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "educentr_backend/internals/features/users/user/model"
	helper "educentr_backend/internals/helpers"
)

/* =======================================================
   Credential provisioning

   Explicit post-creation hook: creating a teacher, parent or
   student also provisions a login user with a generated
   username and one-time password. Called by the owning
   controller inside its transaction.
   ======================================================= */

type ProvisionedUser struct {
	User          userModel.UserModel
	PlainPassword string
}

// ProvisionUser creates a login user for a person record. The generated
// username is a transliterated "lastname_f" slug, de-duplicated with a
// numeric suffix.
func ProvisionUser(tx *gorm.DB, lastName, firstName, email, role string) (*ProvisionedUser, error) {
	base := helper.SanitizeUsername(helper.BuildBaseUsername(lastName, firstName))
	username, err := uniqueUsername(tx, base)
	if err != nil {
		return nil, err
	}

	plain := helper.RandomPassword(10)
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserName:     username,
		UserFullName: strings.TrimSpace(lastName + " " + firstName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     role,
		UserIsActive: true,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}

	return &ProvisionedUser{User: user, PlainPassword: plain}, nil
}

func uniqueUsername(tx *gorm.DB, base string) (string, error) {
	candidate := base
	suffix := 1
	for {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_name = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		suffix++
		trimmed := base
		if len(trimmed) > 15 {
			trimmed = trimmed[:15]
		}
		candidate = fmt.Sprintf("%s%d", trimmed, suffix)
	}
}
