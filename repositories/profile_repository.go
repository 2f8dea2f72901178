package repositories

import (
	"collab-finder/config"
	"collab-finder/models"
)

const searchLimit = 200

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) FindByUserID(userID int) (*models.Profile, error) {
	profile := &models.Profile{}
	if err := config.DB.Where("user_id = ?", userID).First(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Search applies exact university/position filters and an OR-combined keyword
// match across the free-text profile fields. The searching user is excluded
// and results come back most-recently-updated first, capped at searchLimit.
func (r *ProfileRepository) Search(viewerID int, keyword, university, position string) ([]models.Profile, error) {
	query := config.DB.Model(&models.Profile{}).Where("user_id <> ?", viewerID)

	if university != "" {
		query = query.Where("university = ?", university)
	}
	if position != "" {
		query = query.Where("position = ?", position)
	}
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			`full_name LIKE ? OR title LIKE ? OR bio LIKE ? OR skills LIKE ?
			OR device_access LIKE ? OR school_faculty LIKE ? OR supervisor_name LIKE ?`,
			like, like, like, like, like, like, like,
		)
	}

	var profiles []models.Profile
	err := query.Order("updated_at DESC").Limit(searchLimit).Find(&profiles).Error
	return profiles, err
}
