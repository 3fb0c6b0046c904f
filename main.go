package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hangnguyen81/statistics-of-farms/config"
	_ "github.com/hangnguyen81/statistics-of-farms/docs"
	"github.com/hangnguyen81/statistics-of-farms/routes"
)

// @title Statistics of Farms API
// @version 1.0
// @description CRUD API for farms, sensor records and users.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	router := gin.Default()
	router.Use(cors.Default())
	routes.Routes(router, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
