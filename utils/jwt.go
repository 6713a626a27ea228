package utils

import (
	"time"

	"backend/config"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 30 * time.Minute

func GenerateJWT(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	})

	return token.SignedString(config.TokenSecret)
}
