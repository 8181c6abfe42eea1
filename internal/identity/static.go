package identity

import (
	"context"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// StaticProvider treats the token itself as the external id. Dev and test
// only; it accepts any non-empty token.
type StaticProvider struct{}

var _ Provider = StaticProvider{}

func (StaticProvider) Resolve(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	return &Identity{
		ExternalID: token,
		Profile:    forum.Profile{Nickname: "dev-" + token},
	}, nil
}
