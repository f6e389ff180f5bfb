package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/handlers"
	"github.com/example/bazaar/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	marketingHandler := handlers.NewMarketingHandler(db)

	// Public routes
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)
	app.Post("/subscribe", marketingHandler.Subscribe)
	app.Get("/coupons", marketingHandler.ListCoupons)

	// Protected routes
	protected := app.Group("", middleware.AuthMiddleware(db, cfg))
	protected.Get("/user", profileHandler.GetUser)
	protected.Post("/address", profileHandler.CreateAddress)
	protected.Put("/address/:id", profileHandler.UpdateAddress)
	protected.Delete("/address/:id", profileHandler.DeleteAddress)
}
