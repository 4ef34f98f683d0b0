package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Issuer: "fittrack-test", AccessTokenTTL: time.Hour}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	id := uuid.New()

	token, err := GenerateToken(id, "alice", "alice@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "fittrack-test", claims.Issuer)
}

func TestValidateTokenRejects(t *testing.T) {
	cfg := testJWTConfig()
	id := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(id, "alice", "a@example.com", &config.JWTConfig{
			Secret: "other", Issuer: cfg.Issuer, AccessTokenTTL: time.Hour,
		})
		require.NoError(t, err)
		_, err = ValidateToken(token, cfg)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := GenerateToken(id, "alice", "a@example.com", &config.JWTConfig{
			Secret: cfg.Secret, Issuer: "someone-else", AccessTokenTTL: time.Hour,
		})
		require.NoError(t, err)
		_, err = ValidateToken(token, cfg)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken(id, "alice", "a@example.com", &config.JWTConfig{
			Secret: cfg.Secret, Issuer: cfg.Issuer, AccessTokenTTL: -time.Minute,
		})
		require.NoError(t, err)
		_, err = ValidateToken(token, cfg)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{UserID: id})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ValidateToken(signed, cfg)
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	id := uuid.New()
	token, err := GenerateToken(id, "alice", "alice@example.com", cfg)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotName string
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotName = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}, cfg)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}

	assert.Equal(t, id, gotID)
	assert.Equal(t, "alice", gotName)
}

func TestRequestLoggerKeepsStatus(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
