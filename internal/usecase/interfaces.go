package usecase

import "context"

// Identity is the authenticated principal supplied by the identity
// provider. Email is the durable user key.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// TokenVerifier verifies a bearer token and resolves it to an identity.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
