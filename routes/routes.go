package routes

import (
	"github.com/gin-gonic/gin"

	"collab-finder/config"
	"collab-finder/controllers"
	"collab-finder/middleware"
)

func SetupRoutes(router *gin.Engine) {
	homeCtrl := &controllers.HomeController{}
	authCtrl := controllers.NewAuthController()
	profileCtrl := controllers.NewProfileController()
	searchCtrl := controllers.NewSearchController()
	messageCtrl := controllers.NewMessageController()

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", homeCtrl.Index)
	router.GET("/register", authCtrl.RegisterForm)
	router.POST("/register", authCtrl.Register)
	router.GET("/login", authCtrl.LoginForm)
	router.POST("/login", authCtrl.Login)
	router.GET("/logout", authCtrl.Logout)
	router.POST("/api/token", authCtrl.Token)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile/edit", profileCtrl.EditForm)
		auth.POST("/profile/edit", profileCtrl.Update)
		auth.GET("/profile", profileCtrl.Card)
		auth.GET("/u/:id", profileCtrl.View)
		auth.GET("/search", searchCtrl.Search)
		auth.POST("/message/send/:id", messageCtrl.Send)
		auth.GET("/inbox", messageCtrl.Inbox)
		auth.GET("/thread/:id", messageCtrl.Thread)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}
