package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/hangnguyen81/statistics-of-farms/models"
)

// UserController serves the users collection. Username uniqueness is enforced
// by a unique index, not by an in-process check.
type UserController struct {
	users *mongo.Collection
}

func NewUserController(db *mongo.Database) *UserController {
	uc := &UserController{users: db.Collection("users")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := uc.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("failed to create unique index on username: ", err)
	}

	return uc
}

// UserInput is the request body for creating a user. The plaintext password
// is hashed before anything is persisted.
type UserInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// GetUsers godoc
// @Summary Get all users
// @Description Returns the list of all users; password hashes are never included
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	cursor, err := uc.users.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	defer cursor.Close(context.Background())

	users := []models.User{}
	if err := cursor.All(context.Background(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// AddUser godoc
// @Summary Create a new user
// @Description Creates a user account; username must be unique
// @Tags Users
// @Accept json
// @Produce json
// @Param user body UserInput true "User data"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users [post]
func (uc *UserController) AddUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hashedPassword),
	}

	if _, err := uc.users.InsertOne(context.Background(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expected `username` to be unique"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
