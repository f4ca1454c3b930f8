package session

import (
	"context"
	"errors"
	"fmt"

	preferenceRepo "nepwork/database/repository/preference"
	"nepwork/models"

	"go.uber.org/zap"
)

var (
	ErrUnknownRole        = errors.New("unknown role")
	ErrAnonymous          = errors.New("no identity to switch role for")
	ErrAdminClaimRequired = errors.New("admin role requires an admin session")
)

// AccountSyncer persists the role preference on the backend.
type AccountSyncer interface {
	SyncAccount(ctx context.Context, sess *models.Session, role models.Role) error
}

// Resolver determines the acting role of a session.
type Resolver struct {
	store  preferenceRepo.PreferenceStore
	logger *zap.Logger
}

func NewResolver(store preferenceRepo.PreferenceStore, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, logger: logger}
}

// Resolve picks the first usable role from the URL parameter, the persisted
// preference and the session claim, in that order, defaulting to customer.
// Admin is only usable by sessions whose claim is admin. The winner is
// persisted for the next visit. Resolve never fails.
func (r *Resolver) Resolve(ctx context.Context, sess *models.Session, urlRole string) models.Role {
	role := r.resolve(ctx, sess, urlRole)
	if err := r.persist(ctx, sess, role); err != nil {
		r.logger.Warn("failed to persist role preference", zap.String("email", sess.Identity()), zap.Error(err))
	}
	return role
}

func (r *Resolver) resolve(ctx context.Context, sess *models.Session, urlRole string) models.Role {
	if role, ok := models.ParseRole(urlRole); ok && allowed(sess, role) {
		return role
	}
	if stored, ok := r.stored(ctx, sess); ok && allowed(sess, stored) {
		return stored
	}
	if sess != nil {
		if role, ok := models.ParseRole(sess.ClaimRole); ok {
			return role
		}
	}
	return models.DefaultRole
}

func allowed(sess *models.Session, role models.Role) bool {
	if role != models.RoleAdmin {
		return true
	}
	return hasAdminClaim(sess)
}

func hasAdminClaim(sess *models.Session) bool {
	if sess == nil {
		return false
	}
	claim, _ := models.ParseRole(sess.ClaimRole)
	return claim == models.RoleAdmin
}

func (r *Resolver) stored(ctx context.Context, sess *models.Session) (models.Role, bool) {
	if r.store == nil || sess.Identity() == "" {
		return "", false
	}
	role, ok, err := r.store.GetRole(ctx, sess.Identity())
	if err != nil {
		r.logger.Warn("failed to read role preference", zap.String("email", sess.Identity()), zap.Error(err))
		return "", false
	}
	return role, ok
}

func (r *Resolver) persist(ctx context.Context, sess *models.Session, role models.Role) error {
	if r.store == nil || sess.Identity() == "" {
		return nil
	}
	return r.store.SetRole(ctx, sess.Identity(), role)
}

// Switch changes the preferred role. The backend is told first; the local
// preference only changes once it has accepted.
func (r *Resolver) Switch(ctx context.Context, sess *models.Session, raw string, syncer AccountSyncer) (models.Role, error) {
	role, ok := models.ParseRole(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
	if sess.Identity() == "" {
		return "", ErrAnonymous
	}
	if !allowed(sess, role) {
		return "", ErrAdminClaimRequired
	}
	if err := syncer.SyncAccount(ctx, sess, role); err != nil {
		return "", fmt.Errorf("sync role: %w", err)
	}
	if err := r.persist(ctx, sess, role); err != nil {
		r.logger.Warn("failed to persist switched role", zap.String("email", sess.Identity()), zap.Error(err))
	}
	return role, nil
}

// RememberToken stores a verified session's bearer token for later requests
// that arrive without one.
func (r *Resolver) RememberToken(ctx context.Context, sess *models.Session) {
	if r.store == nil || sess.Identity() == "" || sess.Token == "" || !sess.Verified {
		return
	}
	if err := r.store.SetToken(ctx, sess.Identity(), sess.Token); err != nil {
		r.logger.Warn("failed to persist token", zap.String("email", sess.Identity()), zap.Error(err))
	}
}
