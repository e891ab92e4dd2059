package codeforces

import "context"

// Client defines the interface for interacting with the Codeforces API.
// This allows for mock implementations to be used in tests.
type Client interface {
	// GetUsers fetches the public profiles for the given handles in a
	// single batched call. The result order matches the input order.
	GetUsers(ctx context.Context, handles []string) ([]User, error)
}
