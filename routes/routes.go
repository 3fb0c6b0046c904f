package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hangnguyen81/statistics-of-farms/controllers"
)

// Routes wires every endpoint onto the router. Each controller receives the
// database handle here; nothing reads it from package state.
func Routes(router *gin.Engine, db *mongo.Database) {

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	farmController := controllers.NewFarmController(db)
	farmRoutes := api.Group("/farms")
	{
		farmRoutes.GET("", farmController.GetFarms)
		farmRoutes.GET("/:id", farmController.GetFarm)
		farmRoutes.POST("", farmController.AddFarm)
		farmRoutes.PUT("/:id", farmController.UpdateFarm)
		farmRoutes.DELETE("/:id", farmController.DeleteFarm)
	}

	recordController := controllers.NewRecordController(db)
	recordRoutes := api.Group("/records")
	{
		recordRoutes.GET("", recordController.GetRecords)
		recordRoutes.POST("", recordController.AddRecord)
		recordRoutes.GET("/filterByMetric", recordController.FilterByMetric)
		recordRoutes.GET("/filterByMonth", recordController.FilterByMonth)
	}

	userController := controllers.NewUserController(db)
	userRoutes := api.Group("/users")
	{
		userRoutes.GET("", userController.GetUsers)
		userRoutes.POST("", userController.AddUser)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
	})
}
