package auth

import (
	"context"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
)

type contextKey string

// ContextKeyAddress is the context key for the authenticated caller address
const ContextKeyAddress contextKey = "user_address"

// WithAddress adds the caller address to the context
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyAddress, address)
}

// AddressFromContext retrieves the caller address from the context
func AddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyAddress).(string)
	return addr, ok && addr != ""
}

// RequiredAddress returns the caller address of ctx, or an unauthorized
// service error for anonymous requests.
func RequiredAddress(ctx context.Context) (string, error) {
	addr, ok := AddressFromContext(ctx)
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "authentication required")
	}
	return addr, nil
}
