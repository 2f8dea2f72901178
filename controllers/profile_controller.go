package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"collab-finder/config"
	"collab-finder/models"
	"collab-finder/repositories"
	"collab-finder/utils"
)

type ProfileController struct {
	profileRepo *repositories.ProfileRepository
}

func NewProfileController() *ProfileController {
	return &ProfileController{
		profileRepo: repositories.NewProfileRepository(),
	}
}

// ensureProfile lazily creates the profile row, so users who somehow lack one
// (created before the register transaction existed) still get an edit form.
func (ctrl *ProfileController) ensureProfile(userID int) (*models.Profile, error) {
	profile, err := ctrl.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &models.Profile{UserID: userID, UpdatedAt: time.Now()}
		err = config.DB.Create(profile).Error
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (ctrl *ProfileController) EditForm(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.ensureProfile(userID)
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "profile_edit.html", gin.H{
		"Title":          "Edit Profile",
		"Profile":        profile,
		"Universities":   models.Universities,
		"Qualifications": models.Qualifications,
		"Positions":      models.Positions,
		"Countries":      models.Countries,
		"Titles":         models.Titles,
		"MaxMB":          config.AppConfig.MaxUploadSize / (1024 * 1024),
		"Flashes":        utils.Flashes(c),
		"LoggedIn":       true,
	})
}

func (ctrl *ProfileController) Update(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.ensureProfile(userID)
	if err != nil {
		serverError(c)
		return
	}

	// An invalid upload must not touch the stored photo.
	newPhoto := ""
	if file, err := c.FormFile("photo"); err == nil && file.Filename != "" {
		filename, err := utils.SavePhoto(c, file, userID, config.AppConfig.UploadDir, config.AppConfig.MaxUploadSize)
		if err != nil {
			utils.AddFlash(c, "error", err.Error())
			c.Redirect(http.StatusFound, "/profile/edit")
			return
		}
		newPhoto = filename
	}

	title := utils.NormalizeText(c.PostForm("title"))
	fullName := utils.NormalizeText(c.PostForm("full_name"))
	qualification := utils.NormalizeText(c.PostForm("highest_qualification"))
	country := utils.NormalizeText(c.PostForm("country"))
	university := utils.NormalizeText(c.PostForm("university"))
	faculty := utils.NormalizeText(c.PostForm("school_faculty"))
	position := utils.NormalizeText(c.PostForm("position"))
	supervisor := utils.NormalizeText(c.PostForm("supervisor_name"))
	bio := utils.NormalizeText(c.PostForm("bio"))
	skills := utils.NormalizeText(c.PostForm("skills"))
	deviceAccess := utils.NormalizeText(c.PostForm("device_access"))

	if fullName == "" || qualification == "" || country == "" || university == "" ||
		position == "" || bio == "" || skills == "" {
		utils.AddFlash(c, "warning", "Please fill all required fields (device access is optional).")
		c.Redirect(http.StatusFound, "/profile/edit")
		return
	}

	// Supervisors only apply to student positions; clear stale values.
	if !strings.Contains(strings.ToLower(position), "student") {
		supervisor = ""
	}

	updates := map[string]interface{}{
		"title":                 title,
		"full_name":             fullName,
		"highest_qualification": qualification,
		"country":               country,
		"university":            university,
		"school_faculty":        faculty,
		"position":              position,
		"supervisor_name":       supervisor,
		"bio":                   bio,
		"skills":                skills,
		"device_access":         deviceAccess,
		"updated_at":            time.Now(),
	}
	if newPhoto != "" {
		updates["photo_filename"] = newPhoto
	}

	if err := config.DB.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		serverError(c)
		return
	}

	if newPhoto != "" && profile.PhotoFilename != "" {
		utils.DeletePhoto(config.AppConfig.UploadDir, profile.PhotoFilename)
	}

	utils.AddFlash(c, "success", "Profile saved.")
	c.Redirect(http.StatusFound, "/profile")
}

func (ctrl *ProfileController) Card(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.profileRepo.FindByUserID(userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/profile/edit")
		return
	}

	c.HTML(http.StatusOK, "profile_card.html", gin.H{
		"Title":      "My Profile Card",
		"Profile":    profile,
		"IsComplete": profile.IsComplete(),
		"Flashes":    utils.Flashes(c),
		"LoggedIn":   true,
	})
}

func (ctrl *ProfileController) View(c *gin.Context) {
	viewerID := c.GetInt("user_id")

	otherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	profile, err := ctrl.profileRepo.FindByUserID(otherID)
	if err != nil {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "view_profile.html", gin.H{
		"Title":      "Profile",
		"Profile":    profile,
		"CanMessage": viewerID != otherID,
		"Flashes":    utils.Flashes(c),
		"LoggedIn":   true,
	})
}
