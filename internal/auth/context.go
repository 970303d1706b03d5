// ABOUTME: Request identity propagation through context.Context
// ABOUTME: Provides WithIdentity/FromContext for handlers downstream of auth

package auth

import (
	"context"
)

// Identity is the verified caller identity extracted from a bearer token.
// It is a projection of the token's claims; no store access is involved.
type Identity struct {
	ID      string
	Email   string
	IsAdmin bool
}

// identityKey is the key type for storing Identity in context.Context.
type identityKey struct{}

// WithIdentity returns a new context with the identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext retrieves the Identity from the context, returning nil if not
// present.
func FromContext(ctx context.Context) *Identity {
	val := ctx.Value(identityKey{})
	if val == nil {
		return nil
	}
	id, ok := val.(*Identity)
	if !ok {
		return nil
	}
	return id
}
