package config

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"collab-finder/models"
)

var DB *gorm.DB

func ConnectDB() {
	db, err := gorm.Open(sqlite.Open(AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Unable to open database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Message{}); err != nil {
		log.Fatalf("Unable to migrate database: %v", err)
	}

	DB = db
	log.Println("Database connected successfully")
}

// ResetDB deletes the database file so the next ConnectDB recreates the
// schema from scratch.
func ResetDB() {
	if err := os.Remove(AppConfig.DBPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Unable to remove database file: %v", err)
	}
	log.Printf("Database reset: %s will be recreated", AppConfig.DBPath)
}

func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
		log.Println("Database connection closed")
	}
}
