package auth

import (
	"fmt"
	"time"

	"github.com/feastly/feastly/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const tokenTTL = 12 * time.Hour

// AuthToken issues and verifies bearer tokens carrying the actor identity
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type actorClaims struct {
	jwt.RegisteredClaims
	Role          string   `json:"role"`
	TenantID      string   `json:"tenant_id"`
	RestaurantIDs []string `json:"restaurant_ids,omitempty"`
}

// CreateToken creates signed token for the actor
func (at *AuthToken) CreateToken(payload *models.TokenPayload) (string, error) {
	restaurants := make([]string, 0, len(payload.RestaurantIDs))
	for _, id := range payload.RestaurantIDs {
		restaurants = append(restaurants, id.String())
	}

	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.ActorID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		Role:          payload.Role,
		TenantID:      payload.TenantID.String(),
		RestaurantIDs: restaurants,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(at.key)
}

// VerifyToken verifies token string and returns the actor payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	claims := actorClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	restaurants := make([]uuid.UUID, 0, len(claims.RestaurantIDs))
	for _, raw := range claims.RestaurantIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, models.ErrUnauthorized
		}
		restaurants = append(restaurants, id)
	}

	return &models.TokenPayload{
		ActorID:       actorID,
		Role:          claims.Role,
		TenantID:      tenantID,
		RestaurantIDs: restaurants,
	}, nil
}
