package preferenceRepo

import (
	"context"

	"nepwork/models"
)

// PreferenceStore persists the client-side preferences that outlive a
// single request: the last resolved role and the bearer token of an
// identity.
type PreferenceStore interface {
	GetRole(ctx context.Context, identity string) (models.Role, bool, error)
	SetRole(ctx context.Context, identity string, role models.Role) error
	GetToken(ctx context.Context, identity string) (string, bool, error)
	SetToken(ctx context.Context, identity string, token string) error
	ClearToken(ctx context.Context, identity string) error
}
