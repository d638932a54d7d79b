package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/config"
	"travelease/infras/jwt"
	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"
	"travelease/internal/domains/user/model/dto"
	"travelease/internal/domains/user/repository"
	"travelease/internal/domains/user/service"
	"travelease/shared/failure"
)

func newService(t *testing.T) (service.User, repository.User, repository.Session) {
	t.Helper()

	store := kvstore.NewMemoryStore()
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	repo := repository.New(store, mockOtel)
	sessionRepo := repository.NewSession(store, mockOtel)

	return service.New(repo, sessionRepo, jwt.New(cfg), mockOtel), repo, sessionRepo
}

func register(t *testing.T, svc service.User, email string) dto.AuthResponse {
	t.Helper()

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)

	return res
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and establishes a session", func(t *testing.T) {
		svc, repo, sessionRepo := newService(t)

		res := register(t, svc, "a@x.com")
		assert.Equal(t, 1, res.User.ID)
		assert.Equal(t, "a@x.com", res.User.Email)
		assert.True(t, res.User.Preferences.Newsletter)
		assert.False(t, res.User.Preferences.SMSNotifications)
		assert.Equal(t, "English", res.User.Preferences.Language)
		assert.Equal(t, "USD", res.User.Preferences.Currency)
		require.NotNil(t, res.Token)
		assert.NotEmpty(t, res.Token.AccessToken)

		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.NotEqual(t, "secret1", users[0].Password, "password must be stored hashed")

		session, ok, err := sessionRepo.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, session.UserID)
	})

	t.Run("duplicate email conflicts and leaves the collection unchanged", func(t *testing.T) {
		svc, repo, _ := newService(t)

		register(t, svc, "a@x.com")

		_, err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Other User",
			Email:    "a@x.com",
			Password: "another1",
		})
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusConflict))

		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("ids are not reused after deletion", func(t *testing.T) {
		svc, repo, _ := newService(t)

		register(t, svc, "a@x.com")
		register(t, svc, "b@x.com")

		require.NoError(t, repo.ReplaceAll(ctx, nil))

		res := register(t, svc, "c@x.com")
		assert.Equal(t, 3, res.User.ID)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with registration credentials", func(t *testing.T) {
		svc, _, sessionRepo := newService(t)
		register(t, svc, "a@x.com")
		require.NoError(t, svc.Logout(ctx))

		res, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", res.User.Email)

		session, ok, err := sessionRepo.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, res.User.ID, session.UserID)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		svc, _, _ := newService(t)
		register(t, svc, "a@x.com")

		_, errUnknown := svc.Login(ctx, dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
		_, errWrong := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "wrong"})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.True(t, failure.IsCode(errUnknown, http.StatusUnauthorized))
		assert.True(t, failure.IsCode(errWrong, http.StatusUnauthorized))
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessionRepo := newService(t)
	register(t, svc, "a@x.com")

	require.NoError(t, svc.Logout(ctx))

	_, ok, err := sessionRepo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(ctx))
}

func TestUserService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the active user without a password field", func(t *testing.T) {
		svc, _, _ := newService(t)
		register(t, svc, "a@x.com")

		res, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", res.Email)
	})

	t.Run("unauthorized without a session", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Current(ctx)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("shallow merge keeps unspecified fields", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := register(t, svc, "a@x.com")

		res, err := svc.UpdateProfile(ctx, created.User.ID, dto.UpdateProfileRequest{
			Phone: strPtr("555-0100"),
			Preferences: &dto.PreferencesPayload{
				Newsletter: boolPtr(false),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Test User", res.Name)
		assert.Equal(t, "555-0100", res.Phone)
		assert.False(t, res.Preferences.Newsletter)
		assert.Equal(t, "USD", res.Preferences.Currency)
	})

	t.Run("refreshes the session copy of the active user", func(t *testing.T) {
		svc, _, sessionRepo := newService(t)
		created := register(t, svc, "a@x.com")

		_, err := svc.UpdateProfile(ctx, created.User.ID, dto.UpdateProfileRequest{Name: strPtr("Renamed")})
		require.NoError(t, err)

		session, ok, err := sessionRepo.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Renamed", session.Name)
	})

	t.Run("does not touch the session of another user", func(t *testing.T) {
		svc, _, sessionRepo := newService(t)
		first := register(t, svc, "a@x.com")
		register(t, svc, "b@x.com") // session now belongs to b

		_, err := svc.UpdateProfile(ctx, first.User.ID, dto.UpdateProfileRequest{Name: strPtr("Renamed")})
		require.NoError(t, err)

		session, ok, err := sessionRepo.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "b@x.com", session.Email)
	})

	t.Run("not found for an unknown id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.UpdateProfile(ctx, 42, dto.UpdateProfileRequest{Name: strPtr("Nobody")})
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestUserService_RefreshTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new pair while the session is active", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := register(t, svc, "a@x.com")

		pair, err := svc.RefreshTokens(ctx, created.Token.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("rejected after logout", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := register(t, svc, "a@x.com")
		require.NoError(t, svc.Logout(ctx))

		_, err := svc.RefreshTokens(ctx, created.Token.RefreshToken)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})
}
