package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)

func ExistsByEmail(email string) (bool, error) {
	var count int64
	result := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateUser inserts the user. The unique index on email makes concurrent
// registrations safe regardless of any prior existence check.
func CreateUser(user *models.User) error {
	result := config.DB.Create(user)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return result.Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// UpdateUserFields applies a partial column set to the user row and reports
// how many rows matched. Callers own validation of the field set.
func UpdateUserFields(email string, fields map[string]interface{}) (int64, error) {
	result := config.DB.Model(&models.User{}).Where("email = ?", email).Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
