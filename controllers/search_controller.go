package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collab-finder/models"
	"collab-finder/repositories"
	"collab-finder/utils"
)

type SearchController struct {
	profileRepo *repositories.ProfileRepository
}

func NewSearchController() *SearchController {
	return &SearchController{
		profileRepo: repositories.NewProfileRepository(),
	}
}

// Search only runs the query when the form was actually submitted (do=1);
// a bare GET renders the empty form.
func (ctrl *SearchController) Search(c *gin.Context) {
	userID := c.GetInt("user_id")

	didSearch := c.Query("do") == "1"
	keyword := utils.NormalizeText(c.Query("q"))
	university := utils.NormalizeText(c.Query("university"))
	position := utils.NormalizeText(c.Query("position"))

	var results []models.Profile
	if didSearch {
		var err error
		results, err = ctrl.profileRepo.Search(userID, keyword, university, position)
		if err != nil {
			serverError(c)
			return
		}
	}

	c.HTML(http.StatusOK, "search.html", gin.H{
		"Title":        "Search",
		"DidSearch":    didSearch,
		"Results":      results,
		"Query":        keyword,
		"University":   university,
		"Position":     position,
		"Universities": models.Universities,
		"Positions":    models.Positions,
		"Flashes":      utils.Flashes(c),
		"LoggedIn":     true,
	})
}
