package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collab-finder/utils"
)

type HomeController struct{}

func (ctrl *HomeController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "Home",
		"Flashes":  utils.Flashes(c),
		"LoggedIn": currentUserID(c) > 0,
	})
}
