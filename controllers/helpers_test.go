package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/hangnguyen81/statistics-of-farms/models"
	"github.com/hangnguyen81/statistics-of-farms/routes"
)

var initialFarms = []models.Farm{
	{
		Name:     "Friman Metsola collective",
		Address:  "Rekola, 01400 Vantaa, Finland",
		Owner:    "Metso Frinen",
		Geometry: []float64{60.3294982, 25.0825125},
	},
	{
		Name:     "PartialTech Research Farm",
		Address:  "Tikkurilantie 136, 01510 Vantaa, Finland",
		Owner:    "Ville Turvinen",
		Geometry: []float64{60.29666667, 25.03333333},
	},
}

var initialRecords = []models.Record{
	{
		Location:   "Noora farm",
		Datetime:   mustParseTime("2020-06-14T16:00:00.000Z"),
		SensorType: "pH",
		Value:      5.88,
	},
	{
		Location:   "Friman Metsola collective",
		Datetime:   mustParseTime("2019-06-01T11:19:44.018Z"),
		SensorType: "temperature",
		Value:      -23,
	},
	{
		Location:   "PartialTech Research Farm",
		Datetime:   mustParseTime("2021-12-14T22:00:00.000Z"),
		SensorType: "rainFall",
		Value:      34,
	},
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// setupTestAPI connects to the test database, resets every collection, seeds
// the fixtures and returns a fully wired router. Tests are skipped when no
// MONGO_TEST_URI is configured.
func setupTestAPI(t *testing.T) (*gin.Engine, *mongo.Database) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("Skipping test that requires a real MongoDB connection (set MONGO_TEST_URI)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("farmstats_test")

	for _, name := range []string{"farms", "records", "users"} {
		_, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}

	seedFarms := make([]interface{}, len(initialFarms))
	for i, farm := range initialFarms {
		seedFarms[i] = farm
	}
	_, err = db.Collection("farms").InsertMany(ctx, seedFarms)
	require.NoError(t, err)

	seedRecords := make([]interface{}, len(initialRecords))
	for i, record := range initialRecords {
		seedRecords[i] = record
	}
	_, err = db.Collection("records").InsertMany(ctx, seedRecords)
	require.NoError(t, err)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("bimat"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = db.Collection("users").InsertOne(ctx, models.User{
		Username:     "root",
		PasswordHash: string(passwordHash),
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.Routes(router, db)

	return router, db
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

func farmsInDb(t *testing.T, db *mongo.Database) []models.Farm {
	t.Helper()
	cursor, err := db.Collection("farms").Find(context.Background(), bson.M{})
	require.NoError(t, err)
	var farms []models.Farm
	require.NoError(t, cursor.All(context.Background(), &farms))
	return farms
}

func recordsInDb(t *testing.T, db *mongo.Database) []models.Record {
	t.Helper()
	cursor, err := db.Collection("records").Find(context.Background(), bson.M{})
	require.NoError(t, err)
	var records []models.Record
	require.NoError(t, cursor.All(context.Background(), &records))
	return records
}

func usersInDb(t *testing.T, db *mongo.Database) []models.User {
	t.Helper()
	cursor, err := db.Collection("users").Find(context.Background(), bson.M{})
	require.NoError(t, err)
	var users []models.User
	require.NoError(t, cursor.All(context.Background(), &users))
	return users
}

// nonExistingFarmID returns an id that is structurally valid but no longer
// matches any document.
func nonExistingFarmID(t *testing.T, db *mongo.Database) string {
	t.Helper()
	result, err := db.Collection("farms").InsertOne(context.Background(), models.Farm{Name: "Farm will be deleted soon"})
	require.NoError(t, err)
	id := result.InsertedID.(primitive.ObjectID).Hex()
	_, err = db.Collection("farms").DeleteOne(context.Background(), bson.M{"_id": result.InsertedID})
	require.NoError(t, err)
	return id
}

func assertJSONContentType(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()
	require.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
}
