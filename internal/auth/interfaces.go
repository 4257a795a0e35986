package auth

import "github.com/kenf/property-management/internal/database/models"

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GenerateResetToken(email string) (string, error)
	ValidateResetToken(tokenString string) (string, error)
}

// Compile-time interface satisfaction check
var _ TokenService = (*JWTService)(nil)
