package firebase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideanest/internal/usecase"
)

func TestDevTokenRoundTrip(t *testing.T) {
	v := NewDevTokenVerifier("test-secret")

	identity := &usecase.Identity{
		UID:         "uid-1",
		Email:       "a@x.com",
		DisplayName: "Alex",
		PhotoURL:    "https://example.com/p.png",
	}

	token, err := v.IssueToken(identity, time.Hour)
	require.NoError(t, err)

	got, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestDevTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewDevTokenVerifier("secret-a")
	verifier := NewDevTokenVerifier("secret-b")

	token, err := issuer.IssueToken(&usecase.Identity{UID: "uid-1", Email: "a@x.com"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestDevTokenRejectsExpired(t *testing.T) {
	v := NewDevTokenVerifier("test-secret")

	token, err := v.IssueToken(&usecase.Identity{UID: "uid-1", Email: "a@x.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = v.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestDevTokenRejectsGarbage(t *testing.T) {
	v := NewDevTokenVerifier("test-secret")

	_, err := v.VerifyToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
