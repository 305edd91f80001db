package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"evdemand/internal/api/handler/v1handler"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignToken_AcceptedByAPI(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	signed, err := signToken(string(privPEM), "planning-team", time.Hour, time.Now())
	require.NoError(t, err)

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)
	ctx, err := sec.HandleBearerAuth(context.Background(), signed)
	require.NoError(t, err)
	require.Equal(t, "planning-team", v1handler.SubjectFromContext(ctx))
}

func TestSignToken_InvalidKey(t *testing.T) {
	_, err := signToken("not a key", "planning-team", time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse RSA private key")
}
