package main

import (
	"context"
	"log"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	"api/routes/v1"
	"api/storage"

	_ "api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title PhotoArena API
// @version 1.0
// @description API for photo competitions: submissions, moderation, voting and results.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	database.InitDB()

	store, err := storage.NewS3Store(context.Background())
	if err != nil {
		log.Fatal("failed to initialize object storage: ", err)
	}
	storage.Default = store

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.Register(r)

	// Periodically refresh process-level gauges
	middleware.UpdateSystemMetrics()

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
