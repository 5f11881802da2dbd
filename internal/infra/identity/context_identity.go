// Package identity resolves the authenticated customer from the request
// context populated by the auth middleware.
package identity

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/service"
)

type contextKey struct{}

// identityKey is the context key under which the auth middleware stores the
// authenticated identity.
var identityKey = contextKey{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// contextIdentityService implements the service.IdentityService interface.
type contextIdentityService struct{}

// NewContextIdentityService is the constructor for contextIdentityService.
func NewContextIdentityService() service.IdentityService {
	return &contextIdentityService{}
}

// CurrentIdentity returns the identity bound to the context, or nil when
// the request is unauthenticated.
func (s *contextIdentityService) CurrentIdentity(ctx context.Context) (*entity.Identity, error) {
	id, ok := ctx.Value(identityKey).(*entity.Identity)
	if !ok {
		return nil, nil
	}

	return id, nil
}
