package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/yudistira/siswa_app_v1/internal/config"
	"github.com/yudistira/siswa_app_v1/internal/models"
)

// SeedAdmin makes sure the default operator account exists. Running it
// again is a no-op: it only creates when no user carries the configured
// admin username.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded default admin:", cfg.AdminUsername)
	return nil
}
