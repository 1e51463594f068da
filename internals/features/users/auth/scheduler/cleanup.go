package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	"edumanage_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose tokens expired
// more than TOKEN_BLACKLIST_TTL_DAYS ago. Runs once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] pruning token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklistModel
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetch expired tokens: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired tokens removed", len(expired))
				}
			} else {
				log.Println("[CLEANUP] nothing to remove")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
