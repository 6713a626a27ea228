package services

import (
	"backend/config"
	"backend/models"
)

func AddFoodLog(entry *models.FoodLog) error {
	return config.DB.Create(entry).Error
}

// LogsByDate returns a user's entries for one exact day, newest first.
func LogsByDate(userID, date string) ([]models.FoodLog, error) {
	logs := []models.FoodLog{}
	result := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id DESC").
		Find(&logs)
	return logs, result.Error
}

// LogsByDateRange returns a user's entries with date in [start, end]
// inclusive, ascending by date. Bounds are YYYY-MM-DD strings; the column
// holds the same format, so BETWEEN compares correctly.
func LogsByDateRange(userID, start, end string) ([]models.FoodLog, error) {
	logs := []models.FoodLog{}
	result := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&logs)
	return logs, result.Error
}
