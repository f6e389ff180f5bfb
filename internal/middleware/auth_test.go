package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/database"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newGuardedApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/protected", AuthMiddleware(db, cfg), func(c *fiber.Ctx) error {
		userID, _ := GetCurrentUserID(c)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", TokenExpires: time.Hour}
	app := newGuardedApp(db, cfg)

	resp, _ := doGet(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", TokenExpires: time.Hour}
	app := newGuardedApp(db, cfg)

	resp, body := doGet(t, app, "Bearer garbage")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid or Expired Token.", body["message"])
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", TokenExpires: time.Hour}
	app := newGuardedApp(db, cfg)

	user := models.User{Phone: "+1", Email: "a@b.c", Name: "A", LastLoginAt: time.Now()}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.Phone, -time.Minute)
	require.NoError(t, err)

	resp, body := doGet(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid or Expired Token.", body["message"])
}

func TestAuthMiddlewareStaleUser(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", TokenExpires: time.Hour}
	app := newGuardedApp(db, cfg)

	user := models.User{Phone: "+1", Email: "a@b.c", Name: "A", LastLoginAt: time.Now()}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.Phone, time.Hour)
	require.NoError(t, err)

	// Deleting the account invalidates every outstanding token for it.
	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	resp, body := doGet(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User not found or token invalid.", body["message"])
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", TokenExpires: time.Hour}
	app := newGuardedApp(db, cfg)

	user := models.User{Phone: "+1", Email: "a@b.c", Name: "A", LastLoginAt: time.Now()}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.Phone, time.Hour)
	require.NoError(t, err)

	resp, body := doGet(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, user.ID.String(), body["user_id"])
}
