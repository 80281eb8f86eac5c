package client

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"plantstore-admin/internal/model"
)

// InitSessionDB opens the local sqlite file that persists the operator's
// session across restarts.
func InitSessionDB(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := db.AutoMigrate(&model.SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return db, nil
}
