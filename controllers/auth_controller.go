package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Height   float64 `json:"height"`
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	exists, err := services.ExistsByEmail(input.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to check email existence")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"message": "Email already exists"})
		return
	}

	salt, err := utils.GenerateSalt(16)
	if err != nil {
		logrus.WithError(err).Error("failed to generate salt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: utils.HashPassword(input.Password, salt),
		Salt:     salt,
		Name:     input.Name,
		Height:   input.Height,
		Gender:   input.Gender,
		Weight:   input.Weight,
		Age:      input.Age,
		// Stored unrounded at registration; the update path rounds.
		Calories: utils.DailyCalories(input.Weight, input.Height, input.Age, input.Gender),
	}

	err = services.CreateUser(&user)
	if errors.Is(err, services.ErrEmailTaken) {
		// Lost the race to a concurrent registration; same outcome.
		c.JSON(http.StatusOK, gin.H{"message": "Email already exists"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful!"})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusOK, gin.H{"message": "Email does not exist"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if utils.HashPassword(input.Password, user.Salt) != user.Password {
		c.JSON(http.StatusOK, gin.H{"message": "Wrong password!"})
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "token": token})
}
