package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetUserData(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to fetch user data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Fields a client may submit to the update endpoint. calorie_goal is accepted
// but never persisted, and unlike height/weight/age it does not trigger a
// calorie recomputation.
var allowedUpdates = map[string]bool{
	"name":         true,
	"height":       true,
	"weight":       true,
	"age":          true,
	"calorie_goal": true,
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toInt(v interface{}) (int, bool) {
	if f, ok := toFloat(v); ok {
		return int(f), true
	}
	return 0, false
}

func UpdateUserData(c *gin.Context) {
	email := c.GetString("email")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	finalUpdate := map[string]interface{}{}
	needsRecalculation := false

	for key, value := range updates {
		if !allowedUpdates[key] || value == nil {
			continue
		}
		switch key {
		case "height", "weight", "calorie_goal":
			num, ok := toFloat(value)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid value for %s", key)})
				return
			}
			finalUpdate[key] = num
			if key != "calorie_goal" {
				needsRecalculation = true
			}
		case "age":
			num, ok := toInt(value)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for age"})
				return
			}
			finalUpdate[key] = num
			needsRecalculation = true
		default: // name
			s, ok := value.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid value for %s", key)})
				return
			}
			finalUpdate[key] = s
		}
	}

	if len(finalUpdate) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if needsRecalculation {
		user, err := services.FindUserByEmail(email)
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found for calorie recalculation"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("failed to load user for recalculation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		// New values where submitted, stored values otherwise. Gender is not
		// editable through this endpoint.
		weight := user.Weight
		if v, ok := finalUpdate["weight"]; ok {
			weight = v.(float64)
		}
		height := user.Height
		if v, ok := finalUpdate["height"]; ok {
			height = v.(float64)
		}
		age := user.Age
		if v, ok := finalUpdate["age"]; ok {
			age = v.(int)
		}

		finalUpdate["calories"] = math.Round(utils.DailyCalories(weight, height, age, user.Gender))
	}

	// calorie_goal lives client-side only; strip it before the write.
	if _, ok := finalUpdate["calorie_goal"]; ok {
		delete(finalUpdate, "calorie_goal")
		if len(finalUpdate) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
			return
		}
	}

	matched, err := services.UpdateUserFields(email, finalUpdate)
	if err != nil {
		logrus.WithError(err).Error("failed to update user data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User data updated successfully!", "updatedFields": finalUpdate})
}
