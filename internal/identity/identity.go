// Package identity resolves bearer tokens to external user identities.
// The API layer maps those to internal user rows; nothing here touches
// the database.
package identity

import (
	"context"
	"errors"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// ErrUnauthorized marks a token the provider rejected.
var ErrUnauthorized = errors.New("identity: token rejected")

// Identity is what a provider knows about the token's owner.
type Identity struct {
	ExternalID string
	Profile    forum.Profile
}

// Provider turns an access token into an Identity. Implementations must
// return ErrUnauthorized for invalid or expired tokens so callers can
// distinguish auth failures from transport failures.
type Provider interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}
