package utils

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type Flash struct {
	Category string
	Message  string
}

// AddFlash queues a notice for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + message)
	session.Save()
}

// Flashes drains the queued notices.
func Flashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save()

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		encoded, ok := item.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(encoded, "|")
		if !found {
			category, message = "info", encoded
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}
