package identity

import (
	"context"
	"testing"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextIdentityService(t *testing.T) {
	srv := NewContextIdentityService()

	t.Run("returns nil without error when unauthenticated", func(t *testing.T) {
		id, err := srv.CurrentIdentity(context.Background())
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("returns the identity stored by the middleware", func(t *testing.T) {
		want := &entity.Identity{ID: uuid.New(), Email: "claire@example.fr"}
		ctx := WithIdentity(context.Background(), want)

		got, err := srv.CurrentIdentity(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
