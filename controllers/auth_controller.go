package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"collab-finder/config"
	"collab-finder/services"
	"collab-finder/utils"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

func establishSession(c *gin.Context, userID int) {
	session := sessions.Default(c)
	session.Set("user_id", userID)
	session.Save()
}

func (ctrl *AuthController) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Title":    "Register",
		"Heading":  "Register",
		"Button":   "Create account",
		"Action":   "/register",
		"Flashes":  utils.Flashes(c),
		"LoggedIn": currentUserID(c) > 0,
	})
}

func (ctrl *AuthController) Register(c *gin.Context) {
	user, err := ctrl.authService.Register(c.PostForm("email"), c.PostForm("password"))
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		utils.AddFlash(c, "error", "Email and password are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	case errors.Is(err, services.ErrEmailTaken):
		utils.AddFlash(c, "warning", "Email already registered. Please log in.")
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		utils.AddFlash(c, "error", "Registration failed. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	establishSession(c, user.ID)
	utils.AddFlash(c, "success", "Account created. Please complete your profile.")
	c.Redirect(http.StatusFound, "/profile/edit")
}

func (ctrl *AuthController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Title":    "Login",
		"Heading":  "Login",
		"Button":   "Log in",
		"Action":   loginAction(c.Query("next")),
		"Flashes":  utils.Flashes(c),
		"LoggedIn": currentUserID(c) > 0,
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	user, err := ctrl.authService.Login(c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		utils.AddFlash(c, "error", "Invalid email or password.")
		c.Redirect(http.StatusFound, loginAction(c.Query("next")))
		return
	}

	establishSession(c, user.ID)
	utils.AddFlash(c, "success", "Logged in.")

	// Only local paths are honored as a return target.
	next := c.Query("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func loginAction(next string) string {
	if next == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	utils.AddFlash(c, "info", "Logged out.")
	c.Redirect(http.StatusFound, "/")
}

// Token exchanges credentials for a bearer token so programmatic clients can
// use the authenticated routes without a cookie jar.
func (ctrl *AuthController) Token(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	token, err := utils.GenerateToken(user.ID, user.Email, config.AppConfig.JWTSecret, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token issued",
		"data":    gin.H{"token": token},
	})
}
