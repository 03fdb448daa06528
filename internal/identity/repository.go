package identity

import (
	"context"

	"dripstore/internal/kv"
)

const (
	keyUsers   = "dripstore_users"
	keySession = "dripstore_current_user"
)

// Repository persists the user list and the session pointer. Users are
// never seeded; the collection starts empty.
type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
	SaveUsers(ctx context.Context, users []User) error
	SessionToken(ctx context.Context) (string, error)
	SetSessionToken(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) ListUsers(ctx context.Context) ([]User, error) {
	return kv.Load[[]User](ctx, r.store, keyUsers, nil)
}

func (r *repository) SaveUsers(ctx context.Context, users []User) error {
	return kv.Save(ctx, r.store, keyUsers, users)
}

func (r *repository) SessionToken(ctx context.Context) (string, error) {
	return kv.Load[string](ctx, r.store, keySession, nil)
}

func (r *repository) SetSessionToken(ctx context.Context, token string) error {
	return kv.Save(ctx, r.store, keySession, token)
}

func (r *repository) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, keySession)
}
