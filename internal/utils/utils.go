package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Principal distinguishes the two token audiences issued by the platform.
const (
	PrincipalUser  = "user"
	PrincipalAdmin = "admin"
)

// GenerateJWT generates a signed token for the given subject and principal type
func GenerateJWT(subjectID, email, principal string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":       subjectID,
		"email":     email,
		"principal": principal,
		"exp":       time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT parses and validates a token, returning its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GenerateReference generates a random reference string for transactions
func GenerateReference(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}
