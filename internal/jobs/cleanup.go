package jobs

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// StartCleanup runs a goroutine that periodically deletes accounts
// whose last login is older than inactiveMonths, addresses first.
// Failures are logged and retried only on the next tick.
func StartCleanup(db *gorm.DB, interval time.Duration, inactiveMonths int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, -inactiveMonths, 0)
				deleted, err := sweep(db, cutoff)
				if err != nil {
					slog.Error("account cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("account cleanup completed", "deleted_users", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

// sweep deletes every user whose last login predates cutoff, together
// with their addresses. Both deletes run in one transaction so a
// failing address delete never leaves orphaned users behind.
func sweep(db *gorm.DB, cutoff time.Time) (int64, error) {
	var stale []models.User
	if err := db.Select("id").Where("last_login_at < ?", cutoff).Find(&stale).Error; err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(stale))
	for _, user := range stale {
		ids = append(ids, user.ID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id IN ?", ids).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.User{}).Error
	})
	if err != nil {
		return 0, err
	}

	return int64(len(ids)), nil
}
