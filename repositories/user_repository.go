package repositories

import (
	"time"

	"gorm.io/gorm"

	"collab-finder/config"
	"collab-finder/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	user := &models.User{}
	if err := config.DB.Where("email = ?", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	user := &models.User{}
	if err := config.DB.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateWithProfile inserts the user and its empty profile row in one
// transaction, so an authenticated user always has a profile.
func (r *UserRepository) CreateWithProfile(user *models.User) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.Profile{UserID: user.ID, UpdatedAt: time.Now()}
		return tx.Create(profile).Error
	})
}
