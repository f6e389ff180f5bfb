package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type signupRequest struct {
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Name         string `json:"name"`
}

// Signup creates a new user account and issues a session token.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.MobileNumber == "" || req.Email == "" || req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "mobile_number, email and name are required")
	}

	var existing models.User
	err := h.db.Where("phone = ?", req.MobileNumber).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// Signup counts as activity, so fresh accounts are not immediately
	// eligible for the inactivity sweep.
	user := models.User{
		Phone:       req.MobileNumber,
		Email:       req.Email,
		Name:        req.Name,
		LastLoginAt: time.Now(),
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Phone, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

type loginRequest struct {
	MobileNumber string `json:"mobile_number"`
}

// Login authenticates an existing user by mobile number and refreshes
// their last-login timestamp.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.MobileNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "mobile_number is required")
	}

	var user models.User
	if err := h.db.Where("phone = ?", req.MobileNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	now := time.Now()
	if err := h.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		return err
	}
	user.LastLoginAt = now

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Phone, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
