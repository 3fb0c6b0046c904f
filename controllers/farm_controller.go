package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hangnguyen81/statistics-of-farms/models"
)

const minFarmNameLength = 3

// FarmController serves CRUD over the farms collection.
type FarmController struct {
	farms *mongo.Collection
}

func NewFarmController(db *mongo.Database) *FarmController {
	return &FarmController{farms: db.Collection("farms")}
}

// FarmInput is the request body for creating or replacing a farm.
type FarmInput struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Owner    string    `json:"owner"`
	Geometry []float64 `json:"geometry"`
}

// GetFarms godoc
// @Summary Get all farms
// @Description Returns the list of all farms
// @Tags Farms
// @Produce json
// @Success 200 {array} models.Farm
// @Failure 500 {object} models.ErrorResponse
// @Router /farms [get]
func (fc *FarmController) GetFarms(c *gin.Context) {
	cursor, err := fc.farms.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch farms"})
		return
	}
	defer cursor.Close(context.Background())

	farms := []models.Farm{}
	if err := cursor.All(context.Background(), &farms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse farms"})
		return
	}

	c.JSON(http.StatusOK, farms)
}

// GetFarm godoc
// @Summary Get a farm by id
// @Description Returns the farm with the given id
// @Tags Farms
// @Produce json
// @Param id path string true "Farm id"
// @Success 200 {object} models.Farm
// @Failure 404 "Farm not found"
// @Router /farms/{id} [get]
func (fc *FarmController) GetFarm(c *gin.Context) {
	// A malformed id cannot match any document, so it is a plain 404 rather
	// than a format error.
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var farm models.Farm
	err = fc.farms.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&farm)
	if err == mongo.ErrNoDocuments {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch farm"})
		return
	}

	c.JSON(http.StatusOK, farm)
}

// AddFarm godoc
// @Summary Create a new farm
// @Description Creates a farm; name is required with minimum length 3
// @Tags Farms
// @Accept json
// @Produce json
// @Param farm body FarmInput true "Farm data"
// @Success 200 {object} models.Farm
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /farms [post]
func (fc *FarmController) AddFarm(c *gin.Context) {
	var input FarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(input.Name) < minFarmNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required with minimum length of 3"})
		return
	}

	farm := models.Farm{
		ID:       primitive.NewObjectID(),
		Name:     input.Name,
		Address:  input.Address,
		Owner:    input.Owner,
		Geometry: input.Geometry,
	}

	if _, err := fc.farms.InsertOne(context.Background(), farm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert farm"})
		return
	}

	c.JSON(http.StatusOK, farm)
}

// UpdateFarm godoc
// @Summary Update a farm by id
// @Description Replaces name, address, owner and geometry of the farm
// @Tags Farms
// @Accept json
// @Produce json
// @Param id path string true "Farm id"
// @Param farm body FarmInput true "Updated farm data"
// @Success 200 {object} models.Farm
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /farms/{id} [put]
func (fc *FarmController) UpdateFarm(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		return
	}

	var input FarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": bson.M{
		"name":     input.Name,
		"address":  input.Address,
		"owner":    input.Owner,
		"geometry": input.Geometry,
	}}

	result, err := fc.farms.UpdateOne(context.Background(), filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update farm"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		return
	}

	var updated models.Farm
	if err := fc.farms.FindOne(context.Background(), filter).Decode(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch updated farm"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteFarm godoc
// @Summary Delete a farm by id
// @Description Removes the farm if present; deleting an absent farm still succeeds
// @Tags Farms
// @Param id path string true "Farm id"
// @Success 204 "Deleted successfully"
// @Router /farms/{id} [delete]
func (fc *FarmController) DeleteFarm(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// Nothing can match a malformed id; the delete is still idempotent.
		c.Status(http.StatusNoContent)
		return
	}

	if _, err := fc.farms.DeleteOne(context.Background(), bson.M{"_id": objID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete farm"})
		return
	}

	c.Status(http.StatusNoContent)
}
