package service

import (
	"time"

	"boutique/internal/domain/entity"
)

// TokenService validates and issues the access tokens that carry the
// customer identity. Sign-in and token refresh flows live outside this
// service; issuing is exposed mainly for tooling and tests.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for an identity.
	GenerateAccessToken(identity entity.Identity) (string, error)

	// ValidateAccessToken parses a token string and returns the identity it
	// carries, or an error for an invalid or expired token.
	ValidateAccessToken(tokenString string) (*entity.Identity, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration
}
