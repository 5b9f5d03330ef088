package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/config"
	_ "github.com/dendisetiawann/kejora-frontend/docs"
	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/routes"
)

// @title Kejora Café Front-End API
// @version 1.0
// @description Session-backed front-end tier for the Kejora café ordering system
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.ReceiptDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create receipt directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
