package usecase

import (
	"fastrider/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token from the authentication collaborator
// into a verified, opaque user id. The core never re-validates identity.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
