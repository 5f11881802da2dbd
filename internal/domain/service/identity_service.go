// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"boutique/internal/domain/entity"
)

// IdentityService resolves the authenticated customer for the current
// operation. The identity comes from the external auth system; a nil
// identity with no error means the caller is not signed in.
type IdentityService interface {
	// CurrentIdentity returns the identity bound to the context, or nil
	// when the request is unauthenticated.
	CurrentIdentity(ctx context.Context) (*entity.Identity, error)
}
