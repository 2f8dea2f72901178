package main

import (
	"flag"
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"collab-finder/config"
	"collab-finder/middleware"
	"collab-finder/routes"
)

func main() {
	resetDB := flag.Bool("reset-db", false, "delete and recreate the database file")
	flag.Parse()

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if *resetDB {
		config.ResetDB()
	}
	config.ConnectDB()
	defer config.CloseDB()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(sessions.Sessions("collab_session", cookie.NewStore([]byte(config.AppConfig.SessionSecret))))
	router.LoadHTMLGlob("templates/*.html")
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
