package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// currentUserID works on both sides of the auth middleware: handlers behind
// it read the context key, public pages fall back to the session.
func currentUserID(c *gin.Context) int {
	if id := c.GetInt("user_id"); id > 0 {
		return id
	}
	if id, ok := sessions.Default(c).Get("user_id").(int); ok {
		return id
	}
	return 0
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":    "Not Found",
		"Status":   404,
		"Message":  "The page or profile you are looking for does not exist.",
		"LoggedIn": currentUserID(c) > 0,
	})
	c.Abort()
}

func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":    "Error",
		"Status":   500,
		"Message":  "Something went wrong. Please try again.",
		"LoggedIn": currentUserID(c) > 0,
	})
	c.Abort()
}
