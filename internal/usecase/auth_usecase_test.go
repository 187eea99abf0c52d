package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "ideanest/internal/adapter/repository"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/pkg/errors"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, context.Context) {
	t.Helper()

	store := docstore.New(t.TempDir())
	store.Init()

	return NewAuthUseCase(adapterrepo.NewJSONDocUserRepository(store)), context.Background()
}

func TestSignInCreatesUserOnFirstVisit(t *testing.T) {
	uc, ctx := newAuthUseCase(t)

	user, err := uc.SignIn(ctx, SignInInput{
		UID:         "uid-1",
		Email:       "a@x.com",
		DisplayName: "Alex",
		PhotoURL:    "https://example.com/p.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "Alex", user.DisplayName)
	assert.False(t, user.JoinedDate.IsZero())
	assert.Equal(t, user.JoinedDate, user.LastLogin)
}

func TestSignInUpdatesExistingUser(t *testing.T) {
	uc, ctx := newAuthUseCase(t)

	first, err := uc.SignIn(ctx, SignInInput{UID: "uid-1", Email: "a@x.com", DisplayName: "Alex"})
	require.NoError(t, err)
	joined := first.JoinedDate

	time.Sleep(10 * time.Millisecond)

	second, err := uc.SignIn(ctx, SignInInput{UID: "uid-1", Email: "a@x.com", DisplayName: "Alexandra", PhotoURL: "https://example.com/new.png"})
	require.NoError(t, err)

	assert.Equal(t, "Alexandra", second.DisplayName)
	assert.Equal(t, "https://example.com/new.png", second.PhotoURL)
	assert.True(t, joined.Equal(second.JoinedDate), "joined_date is set once")
	assert.True(t, second.LastLogin.After(joined))
}

func TestSignInDefaultsDisplayNameFromEmail(t *testing.T) {
	uc, ctx := newAuthUseCase(t)

	user, err := uc.SignIn(ctx, SignInInput{UID: "uid-1", Email: "casey@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "casey", user.DisplayName)
}

func TestSignInRequiresEmailAndUID(t *testing.T) {
	uc, ctx := newAuthUseCase(t)

	_, err := uc.SignIn(ctx, SignInInput{UID: "uid-1"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.SignIn(ctx, SignInInput{Email: "a@x.com"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetByEmail(t *testing.T) {
	uc, ctx := newAuthUseCase(t)

	_, err := uc.SignIn(ctx, SignInInput{UID: "uid-1", Email: "a@x.com"})
	require.NoError(t, err)

	user, err := uc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)

	_, err = uc.GetByEmail(ctx, "missing@x.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
