package controllers

import (
	"net/http"
	"regexp"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Aggregation entry points, swappable in tests.
var (
	fetchWeeklyBreakdown = services.WeeklyBreakdown
	fetchRangeTotals     = services.RangeTotals
)

type LogFoodInput struct {
	ProductName  string  `json:"product_name"`
	Quantity     float64 `json:"quantity"`
	Calories     float64 `json:"calories"`
	Proteins     float64 `json:"proteins"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	SaturatedFat float64 `json:"saturated_fat"`
	Sugars       float64 `json:"sugars"`
}

var dateParamRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func LogFood(c *gin.Context) {
	email := c.GetString("email")

	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.FoodLog{
		UserID:       email,
		Date:         time.Now().UTC().Format("2006-01-02"),
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		Calories:     input.Calories,
		Proteins:     input.Proteins,
		Carbs:        input.Carbs,
		Fats:         input.Fats,
		SaturatedFat: input.SaturatedFat,
		Sugars:       input.Sugars,
	}

	if err := services.AddFoodLog(&entry); err != nil {
		logrus.WithError(err).Error("failed to insert food log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food logged successfully!"})
}

// DailyLogs aggregates a user's entries around an optional reference date.
// range=weekly answers with a 7-day per-day breakdown for charting; daily,
// monthly and everything else answer with a single summed totals object.
func DailyLogs(c *gin.Context) {
	email := c.GetString("email")
	rawDate := c.Query("date")
	mode := c.Query("range")

	ref := services.ResolveDate(rawDate)

	if mode == services.RangeWeekly {
		dailyData, err := fetchWeeklyBreakdown(email, ref)
		if err != nil {
			logrus.WithError(err).Error("failed to fetch weekly logs")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dailyData": dailyData})
		return
	}

	totals, err := fetchRangeTotals(email, ref, mode)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch aggregate logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

func LogsByDate(c *gin.Context) {
	email := c.GetString("email")
	date := c.Query("date")

	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
		return
	}
	if !dateParamRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD."})
		return
	}

	logs, err := services.LogsByDate(email, date)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch logs by date")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching logs"})
		return
	}

	// Empty day serializes as [], not null.
	c.JSON(http.StatusOK, logs)
}
