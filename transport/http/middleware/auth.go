package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"travelease/infras/jwt"
	"travelease/infras/otel"
	"travelease/shared/constant"
	"travelease/shared/failure"
	"travelease/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth validates bearer tokens on protected routes.
type Auth interface {
	Auth(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			failureErr := failure.Unauthorized(message)
			scope.TraceError(failureErr)
			response.WithError(writer, failureErr)

			return
		}

		userID, err := strconv.Atoi(claims.UserID)
		if err != nil || claims.Email == "" {
			log.Error().Str("userID", claims.UserID).Msg("JWT claims are incomplete")

			failureErr := failure.Unauthorized("Invalid token claims")
			scope.TraceError(failureErr)
			response.WithError(writer, failureErr)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
