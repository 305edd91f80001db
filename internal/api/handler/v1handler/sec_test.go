package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evdemand/internal/api/handler/v1handler"
	"evdemand/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "planning-team", now, now.Add(time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)
	require.Equal(t, "planning-team", v1handler.SubjectFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "planning-team",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject: "planning-team",
	}).SignedString(priv)
	require.NoError(t, err)

	tests := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, "planning-team", now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, "planning-team", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"empty subject":     signJWTRS256(t, priv, "", now, now.Add(time.Hour)),
		"wrong algorithm":   hs256,
		"no expiry":         noExpiry,
		"garbage":           "not.a.token",
	}
	for name, tkn := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), tkn)
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestSecHandler_Middleware(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	var subject string
	h := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = v1handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	now := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, "planning-team", now, now.Add(time.Hour)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "planning-team", subject)
}

func TestSecHandler_Disabled(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)
	require.False(t, sh.Enabled())

	rec := httptest.NewRecorder()
	sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
