package models

import (
	"gorm.io/gorm"
)

// One logged food item for one user on one calendar day. Entries are
// append-only: there is no update or delete path.
type FoodLog struct {
	gorm.Model
	UserID string `gorm:"index:idx_food_logs_user_date;not null" json:"user_id"` // user email
	// Date is stored as a zero-padded YYYY-MM-DD string. Range queries compare
	// dates lexically, so any other format would silently miss rows.
	Date        string  `gorm:"type:varchar(10);index:idx_food_logs_user_date;not null" json:"date"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`

	Calories     float64 `json:"calories"`
	Proteins     float64 `json:"proteins"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	SaturatedFat float64 `json:"saturated_fat"`
	Sugars       float64 `json:"sugars"`
}
