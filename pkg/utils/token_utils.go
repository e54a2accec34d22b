package utils

import (
	"errors"
	"fmt"
	"time"

	"cancha_reservas_web/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenUndecodable covers every way a stored access token can be unusable:
// malformed, truncated, or already expired. Callers degrade to logged-out
// without distinguishing the cause.
var ErrTokenUndecodable = errors.New("access token could not be decoded")

// DecodeIdentity extracts the identity claims from an access token without
// verifying the signature. The result is a display hint for the storefront;
// the upstream services re-verify the token on every privileged call.
func DecodeIdentity(tokenString string, now time.Time) (*models.Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenUndecodable, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: bad exp claim", ErrTokenUndecodable)
	}
	if exp != nil && !exp.After(now) {
		return nil, fmt.Errorf("%w: token expired", ErrTokenUndecodable)
	}

	identity := &models.Identity{}
	if v, ok := claims["id"].(float64); ok {
		identity.UserID = int64(v)
	}
	if v, ok := claims["sub"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["rol"].(string); ok {
		identity.Rol = v
	}
	if v, ok := claims["nombre"].(string); ok {
		identity.Nombre = v
	}

	// The services reject tokens missing any of these, so a decode that
	// cannot produce them is treated the same as a malformed token.
	if identity.UserID == 0 || identity.Email == "" || identity.Rol == "" {
		return nil, fmt.Errorf("%w: required claims missing", ErrTokenUndecodable)
	}
	return identity, nil
}
