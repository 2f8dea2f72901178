package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"collab-finder/config"
	"collab-finder/models"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh pool connection to :memory: would be a fresh empty database;
	// pin the pool to one connection so every statement sees the schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Message{}))
	config.DB = db
}

func seedUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, config.DB.Create(user).Error)
	require.NoError(t, config.DB.Create(&models.Profile{UserID: user.ID}).Error)
	return user
}

func setProfileFields(t *testing.T, userID int, fields map[string]interface{}) {
	t.Helper()
	require.NoError(t, config.DB.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumns(fields).Error)
}

func seedMessage(t *testing.T, senderID, receiverID int, body string) *models.Message {
	t.Helper()

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, config.DB.Create(msg).Error)
	return msg
}

func uniqueEmail(i int) string {
	return fmt.Sprintf("user%d@example.edu", i)
}
