package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// SubjectID is the partner ID for partner tokens and the operator ID for admin tokens.
type Claims struct {
	SubjectID uuid.UUID
	Roles     []string
	Type      string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWT access tokens.
// Token issuance for real logins happens in the OTP flow outside this service.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a subject and its roles.
	GenerateAccessToken(subjectID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
