package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/utils"
)

// MarketingHandler serves coupons and newsletter subscriptions.
type MarketingHandler struct {
	db *gorm.DB
}

// NewMarketingHandler constructs MarketingHandler.
func NewMarketingHandler(db *gorm.DB) *MarketingHandler {
	return &MarketingHandler{db: db}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the newsletter list. Duplicates are
// rejected so the list holds each address exactly once.
func (h *MarketingHandler) Subscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fiber.NewError(fiber.StatusBadRequest, "a valid email is required")
	}

	var existing models.NewsletterSubscription
	err := h.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Email already subscribed")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	subscription := models.NewsletterSubscription{Email: email}
	if err := h.db.Create(&subscription).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "subscribed",
	})
}

// ListCoupons returns the active coupon set.
func (h *MarketingHandler) ListCoupons(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Coupon{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return err
	}

	var coupons []models.Coupon
	if err := h.db.Where("is_active = ?", true).
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").Find(&coupons).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "coupons": coupons, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}
