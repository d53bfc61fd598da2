//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/builder"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	users  *queriesmock.MockUserStore
	tokens *jwt.Service
	uc     commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		users:  queriesmock.NewMockUserStore(ctrl),
		tokens: jwt.NewService("test-secret-key-32-characters-ok", 15*time.Minute, 24*time.Hour),
	}
	f.uc = commands.NewAuthCommands(&fakeUoW{newFakeState()}, f.users, f.tokens, clock.NewMockClock(fixedNow))
	return f
}

func TestAuthLogin(t *testing.T) {
	const rawPassword = "password123"
	hash, err := password.HashPassword(rawPassword)
	require.NoError(t, err)

	cmd := commands.LoginCommand{Email: "guest@example.com", Password: rawPassword}

	t.Run("issues tokens and records the login time", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildView()
		f.users.EXPECT().FindByEmail(gomock.Any(), cmd.Email).Return(view, hash, nil)

		result, err := f.uc.Login(context.Background(), cmd)
		require.NoError(t, err)

		claims, err := f.tokens.ValidateAccessToken(result.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, view.Role, claims.Role)

		require.NotNil(t, result.User.LastLogin)
		assert.Equal(t, fixedNow, *result.User.LastLogin)
	})

	t.Run("malformed email never reaches the store", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Login(context.Background(), commands.LoginCommand{
			Email:    "not-an-email",
			Password: rawPassword,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindByEmail(gomock.Any(), cmd.Email).
			Return(nil, "", infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound))

		_, err := f.uc.Login(context.Background(), cmd)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildView()
		f.users.EXPECT().FindByEmail(gomock.Any(), cmd.Email).Return(view, hash, nil)

		_, err := f.uc.Login(context.Background(), commands.LoginCommand{
			Email:    cmd.Email,
			Password: "wrongpassword",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().AsInactive().BuildView()
		f.users.EXPECT().FindByEmail(gomock.Any(), cmd.Email).Return(view, hash, nil)

		_, err := f.uc.Login(context.Background(), cmd)
		assert.ErrorIs(t, err, errs.ErrUserInactive)
	})
}

func TestAuthRefresh(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildView()
		pair, err := f.tokens.GenerateTokenPair(view.ID, "guest")
		require.NoError(t, err)

		f.users.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		result, err := f.uc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)

		claims, err := f.tokens.ValidateAccessToken(result.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		pair, err := f.tokens.GenerateTokenPair(uuid.New(), "guest")
		require.NoError(t, err)

		_, err = f.uc.Refresh(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Refresh(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAuthFixture(t)
		userID := uuid.New()
		pair, err := f.tokens.GenerateTokenPair(userID, "guest")
		require.NoError(t, err)

		f.users.EXPECT().FindByID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound))

		_, err = f.uc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("deactivated user", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().AsInactive().BuildView()
		pair, err := f.tokens.GenerateTokenPair(view.ID, "guest")
		require.NoError(t, err)

		f.users.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err = f.uc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, errs.ErrUserInactive)
	})
}
