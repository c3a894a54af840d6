package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"sigmagram/internal/config"
	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	jwtsvc "sigmagram/internal/pkg/jwt"
)

// Clears stored refresh tokens whose claims have already expired, so stale
// sessions cannot linger in the users table. Intended to run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	var stale []domain.User
	if err := db.Where("refresh_token IS NOT NULL").Find(&stale).Error; err != nil {
		log.Fatalf("listing sessions failed: %v", err)
	}

	now := time.Now()
	cleared := 0
	for _, u := range stale {
		claims, err := j.VerifyRefresh(*u.RefreshToken)
		expired := err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(now)
		if !expired {
			continue
		}
		res := db.Model(&domain.User{}).
			Where("id = ? AND refresh_token IS NOT NULL", u.ID).
			Update("refresh_token", nil)
		if res.Error != nil {
			log.Fatalf("clearing session for %s failed: %v", u.ID, res.Error)
		}
		cleared += int(res.RowsAffected)
	}

	log.Printf("session cleanup completed: checked=%d cleared=%d", len(stale), cleared)
}
