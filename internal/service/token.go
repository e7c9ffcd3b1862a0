package service

import "github.com/feastly/feastly/internal/models"

// TokenService issues and verifies bearer tokens
type TokenService interface {
	CreateToken(payload *models.TokenPayload) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}
