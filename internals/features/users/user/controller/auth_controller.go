// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"educentr_backend/internals/configs"
	d "educentr_backend/internals/features/users/user/dto"
	m "educentr_backend/internals/features/users/user/model"
	helper "educentr_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

const accessTokenTTL = 24 * time.Hour

/* =========================
   Login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.Where("user_name = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Неверный логин или пароль.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "database error")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Аккаунт отключен.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Неверный логин или пароль.")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "token signing failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "login ok", d.LoginResponse{
		AccessToken: token,
		User:        d.NewUserResponse(&user),
	})
}

/* =========================
   Logout
   ========================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "logout ok", fiber.Map{"ok": true})
}

/* =========================
   Me
   ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user m.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "database error")
	}
	return helper.Success(c, "ok", d.NewUserResponse(&user))
}

func signAccessToken(user *m.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
