package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/bazaar/internal/models"
)

var db *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	if db != nil {
		return db
	}

	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("failed to ensure database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := seedCoupons(conn); err != nil {
		log.Printf("warning: failed to seed coupons: %v", err)
	}

	db = conn
	return db
}

// DB exposes the initialized gorm.DB instance.
func DB() *gorm.DB {
	return db
}

// Migrate creates or updates the schema for all application models.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.User{},
		&models.Address{},
		&models.Coupon{},
		&models.NewsletterSubscription{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// seedCoupons inserts the reference coupon set on first boot. Coupons
// have no write endpoint, so an empty table would stay empty forever.
func seedCoupons(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Coupon{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	coupons := []models.Coupon{
		{
			Code:            "WELCOME10",
			Description:     "10% off your first order",
			DiscountPercent: 10,
			MinOrderValue:   0,
			ExpiresAt:       time.Now().AddDate(1, 0, 0),
			IsActive:        true,
		},
		{
			Code:            "FREESHIP",
			Description:     "Free delivery on orders above 499",
			DiscountPercent: 0,
			MinOrderValue:   499,
			ExpiresAt:       time.Now().AddDate(0, 6, 0),
			IsActive:        true,
		},
	}

	return conn.Create(&coupons).Error
}

func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
