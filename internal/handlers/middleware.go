package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/rs/zerolog/log"
)

var errInvalidAuthorizationHeader = errors.New("invalid authorization header")

// Authenticator resolves the user behind a request.
type Authenticator interface {
	Authenticate(req *http.Request) (userId string, err error)
}

type prodAuthenticator struct {
	authService services.AuthServicer
}

func NewProdAuthenticator(authService services.AuthServicer) Authenticator {
	return &prodAuthenticator{
		authService: authService,
	}
}

func bearerToken(req *http.Request) (string, error) {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", errInvalidAuthorizationHeader
	}
	return token, nil
}

func (a prodAuthenticator) Authenticate(req *http.Request) (string, error) {
	accessToken, err := bearerToken(req)
	if err != nil {
		return "", err
	}

	claims, err := a.authService.ValidateAccessToken(accessToken)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

type MiddlewareHandler interface {
	Logger(next http.Handler) http.Handler
	Authenticate(next http.Handler) http.Handler
}

type middleware struct {
	configs       configs.Configs
	authenticator Authenticator
}

func NewMiddlewareHandler(configs configs.Configs, authenticator Authenticator) MiddlewareHandler {
	return &middleware{
		configs:       configs,
		authenticator: authenticator,
	}
}

func (m middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		subLogger := log.
			With().
			Str("request_id", uuid.New().String()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("client_ip", req.RemoteAddr).
			Logger()

		req = req.WithContext(subLogger.WithContext(req.Context()))
		next.ServeHTTP(res, req)
	})
}

type userIdKey struct{}

func (m middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := log.Ctx(ctx).With().Logger()

		userId, err := m.authenticator.Authenticate(req)
		if err != nil {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusUnauthorized).Msg("failed to authenticate request")
			http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		subLogger := logger.With().Str("user_id", userId).Logger()
		ctx = context.WithValue(subLogger.WithContext(ctx), userIdKey{}, userId)
		next.ServeHTTP(res, req.WithContext(ctx))
	})
}
