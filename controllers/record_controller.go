package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hangnguyen81/statistics-of-farms/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// RecordController serves the records collection. Records are append-only:
// there are no update or delete operations.
type RecordController struct {
	records *mongo.Collection
}

func NewRecordController(db *mongo.Database) *RecordController {
	return &RecordController{records: db.Collection("records")}
}

// RecordInput is the request body for creating a record. Datetime must be an
// RFC 3339 timestamp and value a JSON number; anything else fails binding.
type RecordInput struct {
	Location   string    `json:"location"`
	Datetime   time.Time `json:"datetime"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
}

// GetRecords godoc
// @Summary Get all records
// @Description Returns every sensor reading from every farm
// @Tags Records
// @Produce json
// @Success 200 {array} models.Record
// @Failure 500 {object} models.ErrorResponse
// @Router /records [get]
func (rc *RecordController) GetRecords(c *gin.Context) {
	cursor, err := rc.records.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}
	defer cursor.Close(context.Background())

	records := []models.Record{}
	if err := cursor.All(context.Background(), &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// AddRecord godoc
// @Summary Create a new record
// @Description Stores one sensor reading; location and datetime are required
// @Tags Records
// @Accept json
// @Produce json
// @Param record body RecordInput true "Record data"
// @Success 200 {object} models.Record
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /records [post]
func (rc *RecordController) AddRecord(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}
	if input.Datetime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datetime is required"})
		return
	}

	record := models.Record{
		ID:         primitive.NewObjectID(),
		Location:   input.Location,
		Datetime:   input.Datetime,
		SensorType: input.SensorType,
		Value:      input.Value,
	}

	if _, err := rc.records.InsertOne(context.Background(), record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert record"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// FilterByMetric godoc
// @Summary Fetch records by metric
// @Description Returns records whose sensorType equals the given metric
// @Tags Records
// @Produce json
// @Param metric query string true "Metric type to filter"
// @Param page query int false "Page number of filter result (default 1)"
// @Param limit query int false "Number of records per page (default 10)"
// @Success 200 {array} models.Record
// @Failure 404 "No data with provided metric"
// @Failure 500 {object} models.ErrorResponse
// @Router /records/filterByMetric [get]
func (rc *RecordController) FilterByMetric(c *gin.Context) {
	metric := c.Query("metric")
	page, limit := pagination(c)

	filter := bson.M{"sensorType": metric}
	rc.findPage(c, filter, page, limit, "no data with provided metric")
}

// FilterByMonth godoc
// @Summary Fetch records by month
// @Description Returns records whose datetime falls in the given calendar month (1-12)
// @Tags Records
// @Produce json
// @Param month query int true "Month to filter"
// @Param page query int false "Page number of filter result (default 1)"
// @Param limit query int false "Number of records per page (default 10)"
// @Success 200 {array} models.Record
// @Failure 404 "No data with provided month"
// @Failure 500 {object} models.ErrorResponse
// @Router /records/filterByMonth [get]
func (rc *RecordController) FilterByMonth(c *gin.Context) {
	// A month outside 1-12 (or not a number at all) simply matches nothing
	// and yields 404, same as an unknown metric.
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		month = 0
	}
	page, limit := pagination(c)

	filter := bson.M{"$expr": bson.M{"$eq": bson.A{
		bson.M{"$month": "$datetime"},
		month,
	}}}
	rc.findPage(c, filter, page, limit, "no data with provided month")
}

// findPage runs a filtered find with skip/limit pagination and writes the
// result. An empty page, whether from an unmatched filter or a page past the
// end, is reported as 404 with a plain-text body.
func (rc *RecordController) findPage(c *gin.Context, filter bson.M, page, limit int64, emptyMsg string) {
	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := rc.records.Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}
	defer cursor.Close(context.Background())

	var records []models.Record
	if err := cursor.All(context.Background(), &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse records"})
		return
	}

	if len(records) == 0 {
		c.String(http.StatusNotFound, emptyMsg)
		return
	}

	c.JSON(http.StatusOK, records)
}

func pagination(c *gin.Context) (page, limit int64) {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err = strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
