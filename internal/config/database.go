package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resume-extractor/internal/models"
)

// InitDatabase opens the student store, sizes its pool and migrates the
// student and document tables.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	log.Printf("✅ Database %s connected (max %d connections)\n", cfg.Database.DBName, cfg.Database.MaxOpenConns)

	if err := db.AutoMigrate(&models.Student{}, &models.StudentDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate student tables: %w", err)
	}

	log.Println("✅ Student tables migrated")

	return db, nil
}
