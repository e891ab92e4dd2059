package handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
)

// ErrNotRegistered is returned when a member has no handle on record.
var ErrNotRegistered = errors.New("member has no registered handle")

// Registrar binds members to verified Codeforces handles.
type Registrar struct {
	store HandleStore
	cf    codeforces.Client
}

// NewRegistrar creates a new Registrar.
func NewRegistrar(store HandleStore, cf codeforces.Client) *Registrar {
	return &Registrar{
		store: store,
		cf:    cf,
	}
}

// Register verifies the handle against Codeforces and, only on success,
// persists the member→handle mapping. An unverified handle is never stored.
func (r *Registrar) Register(ctx context.Context, memberID, handle string) (*codeforces.User, error) {
	users, err := r.cf.GetUsers(ctx, []string{handle})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("codeforces returned no profile for %q", handle)
	}

	if err := r.store.Set(memberID, users[0].Handle); err != nil {
		return nil, err
	}
	return &users[0], nil
}

// Profile fetches the Codeforces profile for the member's registered
// handle. Returns ErrNotRegistered when no mapping exists.
func (r *Registrar) Profile(ctx context.Context, memberID string) (*codeforces.User, error) {
	h, ok, err := r.store.Get(memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotRegistered
	}

	users, err := r.cf.GetUsers(ctx, []string{h})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("codeforces returned no profile for %q", h)
	}
	return &users[0], nil
}
