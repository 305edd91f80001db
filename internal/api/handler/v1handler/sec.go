package v1handler

import (
	"context"
	"crypto/rsa"
	"evdemand/internal/config"
	"evdemand/pkg/logger"
	"evdemand/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// SubjectKey holds the authenticated token subject in the request context.
const SubjectKey contextKey = "subject"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. Empty
	// disables authentication.
	PublicKey string
}

// NewSecHandlerOptions maps the JWT section of the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured RSA public key. An empty key yields a
// disabled handler, see Enabled.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are checked at all.
func (s *SecHandler) Enabled() bool { return s.key != nil }

// HandleBearerAuth validates token and stores its subject in the returned
// context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("subject", claims.Subject)), nil
}

// Middleware rejects requests without a valid bearer token. It is a no-op
// when authentication is disabled.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if !s.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the authenticated subject, or "" for anonymous
// requests.
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)

	return s
}

