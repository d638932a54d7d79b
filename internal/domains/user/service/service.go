package service

import (
	"context"
	"fmt"
	"strconv"
	"travelease/infras/jwt"
	"travelease/infras/otel"
	"travelease/internal/domains/user/model"
	"travelease/internal/domains/user/model/dto"
	"travelease/internal/domains/user/repository"
	"travelease/shared/constant"
	"travelease/shared/failure"
	"travelease/shared/password"
	"travelease/shared/timezone"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid email or password"

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id int, req dto.UpdateProfileRequest) (dto.UserResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

type serviceImpl struct {
	repo        repository.User
	sessionRepo repository.Session
	jwt         jwt.JWT
	otel        otel.Otel
}

func New(repo repository.User, sessionRepo repository.Session, jwtService jwt.JWT, otel otel.Otel) User {
	return &serviceImpl{
		repo:        repo,
		sessionRepo: sessionRepo,
		jwt:         jwtService,
		otel:        otel,
	}
}

// Register creates an account and logs it in immediately, so a fresh
// registration always ends with an active session.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	for _, user := range users {
		if user.Email == req.Email {
			return res, failure.Conflict("email is already registered") // nolint:wrapcheck
		}
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate user id")

		return res, fmt.Errorf("failed to allocate user id: %w", err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Password:    hash,
		Phone:       req.Phone,
		Preferences: model.DefaultPreferences(),
		CreatedAt:   timezone.Now(),
	}

	if err = s.repo.Append(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int("id", user.ID).Msg("user registered")

	return s.establishSession(ctx, user)
}

// Login verifies credentials and replaces the active session. The error
// never distinguishes an unknown email from a wrong password.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	for _, user := range users {
		if user.Email != req.Email {
			continue
		}

		if err = password.Verify(req.Password, user.Password); err != nil {
			break
		}

		return s.establishSession(ctx, user)
	}

	return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
}

func (s *serviceImpl) establishSession(ctx context.Context, user model.User) (res dto.AuthResponse, err error) {
	session := user.ToSession(timezone.Now())

	if err = s.sessionRepo.Put(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.jwt.GenerateTokenPair(strconv.Itoa(user.ID), user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.User.FromModel(user)
	res.Token = token

	return res, nil
}

// Logout clears the session unconditionally. Logging out with no active
// session is not an error.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.sessionRepo.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Current returns the active session's user.
func (s *serviceImpl) Current(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return res, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	res.FromSession(session)

	return res, nil
}

// UpdateProfile shallow-merges the provided fields into the stored user
// and refreshes the session copy when the active user was updated.
func (s *serviceImpl) UpdateProfile(ctx context.Context, id int, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	index := -1
	for i, user := range users {
		if user.ID == id {
			index = i

			break
		}
	}

	if index < 0 {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	users[index] = mergeProfile(users[index], req)

	if err = s.repo.ReplaceAll(ctx, users); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	if err = s.refreshSession(ctx, users[index]); err != nil {
		return res, err
	}

	res.FromModel(users[index])

	return res, nil
}

func (s *serviceImpl) refreshSession(ctx context.Context, user model.User) error {
	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return fmt.Errorf("failed to get session: %w", err)
	}

	if !ok || session.UserID != user.ID {
		return nil
	}

	refreshed := user.ToSession(session.LoggedInAt)
	if err = s.sessionRepo.Put(ctx, refreshed); err != nil {
		log.Error().Err(err).Msg("failed to refresh session")

		return fmt.Errorf("failed to refresh session: %w", err)
	}

	return nil
}

func mergeProfile(user model.User, req dto.UpdateProfileRequest) model.User {
	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if req.Address != nil {
		user.Address = *req.Address
	}

	if req.Preferences != nil {
		if req.Preferences.Newsletter != nil {
			user.Preferences.Newsletter = *req.Preferences.Newsletter
		}

		if req.Preferences.SMSNotifications != nil {
			user.Preferences.SMSNotifications = *req.Preferences.SMSNotifications
		}

		if req.Preferences.Language != nil {
			user.Preferences.Language = *req.Preferences.Language
		}

		if req.Preferences.Currency != nil {
			user.Preferences.Currency = *req.Preferences.Currency
		}
	}

	return user
}

// RefreshTokens exchanges a refresh token for a new pair. The session
// must still be active; a logged out user cannot refresh.
func (s *serviceImpl) RefreshTokens(ctx context.Context, refreshToken string) (token *jwt.TokenPair, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshTokens")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return nil, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	token, err = s.jwt.RefreshTokens(refreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh tokens")

		return nil, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return token, nil
}
