package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collab-finder/repositories"
	"collab-finder/utils"
)

type MessageController struct {
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
	profileRepo *repositories.ProfileRepository
}

func NewMessageController() *MessageController {
	return &MessageController{
		messageRepo: repositories.NewMessageRepository(),
		userRepo:    repositories.NewUserRepository(),
		profileRepo: repositories.NewProfileRepository(),
	}
}

func (ctrl *MessageController) Send(c *gin.Context) {
	userID := c.GetInt("user_id")

	otherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	if userID == otherID {
		utils.AddFlash(c, "warning", "You cannot message yourself.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/u/%d", otherID))
		return
	}

	body := utils.NormalizeText(c.PostForm("body"))
	if body == "" {
		utils.AddFlash(c, "error", "Message body cannot be empty.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/u/%d", otherID))
		return
	}

	if _, err := ctrl.userRepo.FindByID(otherID); err != nil {
		notFound(c)
		return
	}

	if err := ctrl.messageRepo.Create(userID, otherID, body); err != nil {
		serverError(c)
		return
	}

	utils.AddFlash(c, "success", "Message sent.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/thread/%d", otherID))
}

func (ctrl *MessageController) Inbox(c *gin.Context) {
	userID := c.GetInt("user_id")

	conversations, err := ctrl.messageRepo.Conversations(userID)
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "inbox.html", gin.H{
		"Title":    "Inbox",
		"Threads":  conversations,
		"Flashes":  utils.Flashes(c),
		"LoggedIn": true,
	})
}

// Thread renders the pair history and, as a side effect, marks every unread
// message from the other party as read.
func (ctrl *MessageController) Thread(c *gin.Context) {
	userID := c.GetInt("user_id")

	otherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	if userID == otherID {
		utils.AddFlash(c, "warning", "No thread with yourself.")
		c.Redirect(http.StatusFound, "/inbox")
		return
	}

	otherProfile, err := ctrl.profileRepo.FindByUserID(otherID)
	if err != nil {
		notFound(c)
		return
	}

	messages, err := ctrl.messageRepo.Thread(userID, otherID)
	if err != nil {
		serverError(c)
		return
	}

	if err := ctrl.messageRepo.MarkRead(userID, otherID); err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "thread.html", gin.H{
		"Title":     "Thread",
		"Messages":  messages,
		"OtherID":   otherID,
		"OtherName": otherProfile.DisplayName(),
		"Me":        userID,
		"Flashes":   utils.Flashes(c),
		"LoggedIn":  true,
	})
}
