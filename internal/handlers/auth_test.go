package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/middleware"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/utils"
)

func testJWT() *config.JWTConfig {
	return &config.JWTConfig{Secret: "handler-test-secret", Issuer: "fittrack-test", AccessTokenTTL: time.Hour}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func hashedUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: uuid.New(), Username: username, Email: email, PasswordHash: hash}
}

func TestRegister(t *testing.T) {
	users := newFakeUsers()
	h := NewAuthHandler(users, testJWT())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, dto.RegisterRequest{
		Username: " alice ", Email: "alice@example.com", Password: "secret1",
	}))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[dto.AuthResponse](t, rr)
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	claims, err := middleware.ValidateToken(resp.Token, testJWT())
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID.String())

	stored := users.get(claims.UserID)
	require.NotNil(t, stored)
	assert.True(t, utils.IsHashed(stored.PasswordHash))
	assert.True(t, utils.VerifyPassword("secret1", stored.PasswordHash))

	t.Run("duplicate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, dto.RegisterRequest{
			Username: "alice", Email: "other@example.com", Password: "secret1",
		}))
		rr := httptest.NewRecorder()
		h.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("duplicate email in other case", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, dto.RegisterRequest{
			Username: "alice2", Email: "ALICE@Example.com", Password: "secret1",
		}))
		rr := httptest.NewRecorder()
		h.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("email stored lowercase", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, dto.RegisterRequest{
			Username: "carol", Email: " Carol@Example.com ", Password: strings.Repeat("x", 72),
		}))
		rr := httptest.NewRecorder()
		h.Register(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, "carol@example.com", decode[dto.AuthResponse](t, rr).User.Email)
	})
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(newFakeUsers(), testJWT())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing fields", dto.RegisterRequest{Username: "bob"}},
		{"short username", dto.RegisterRequest{Username: "bo", Email: "bob@example.com", Password: "secret1"}},
		{"bad email", dto.RegisterRequest{Username: "bob", Email: "bob@example", Password: "secret1"}},
		{"email with space", dto.RegisterRequest{Username: "bob", Email: "b ob@example.com", Password: "secret1"}},
		{"short password", dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "12345"}},
		{"password over 72 bytes", dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: strings.Repeat("a", 73)}},
		{"multibyte password over 72 bytes", dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: strings.Repeat("é", 37)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Register(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, tt.req)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	t.Run("empty body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Register(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "request body is empty", decode[dto.ErrorResponse](t, rr).Message)
	})

	t.Run("wrong method", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Register(rr, httptest.NewRequest(http.MethodGet, "/api/auth/register", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	alice := hashedUser(t, "alice", "alice@example.com", "secret1")
	legacy := &models.User{ID: uuid.New(), Username: "legacy", Email: "legacy@example.com", PasswordHash: "plainpass"}
	google := &models.User{ID: uuid.New(), Username: "gina", Email: "gina@example.com"}
	users := newFakeUsers(alice, legacy, google)
	h := NewAuthHandler(users, testJWT())

	login := func(req dto.LoginRequest) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, req)))
		return rr
	}

	t.Run("by username", func(t *testing.T) {
		rr := login(dto.LoginRequest{Username: "alice", Password: "secret1"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decode[dto.AuthResponse](t, rr)
		assert.Equal(t, alice.ID.String(), resp.User.ID)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("by email", func(t *testing.T) {
		rr := login(dto.LoginRequest{Email: "ALICE@example.com", Password: "secret1"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	failures := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "nope123"}},
		{"unknown user", dto.LoginRequest{Username: "nobody", Password: "secret1"}},
		{"passwordless account", dto.LoginRequest{Username: "gina", Password: ""}},
		{"passwordless account with guess", dto.LoginRequest{Username: "gina", Password: "anything"}},
		{"legacy wrong password", dto.LoginRequest{Username: "legacy", Password: "plainpas"}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			rr := login(tt.req)
			if tt.req.Password == "" {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				return
			}
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Invalid credentials", decode[dto.ErrorResponse](t, rr).Error)
		})
	}

	t.Run("legacy plaintext is rehashed", func(t *testing.T) {
		rr := login(dto.LoginRequest{Username: "legacy", Password: "plainpass"})
		require.Equal(t, http.StatusOK, rr.Code)

		stored := users.get(legacy.ID)
		assert.True(t, utils.IsHashed(stored.PasswordHash))
		assert.True(t, utils.VerifyPassword("plainpass", stored.PasswordHash))

		rr = login(dto.LoginRequest{Username: "legacy", Password: "plainpass"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("store error looks like bad credentials", func(t *testing.T) {
		broken := newFakeUsers()
		broken.failGet = true
		rr := httptest.NewRecorder()
		NewAuthHandler(broken, testJWT()).Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login",
			jsonBody(t, dto.LoginRequest{Username: "alice", Password: "secret1"})))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProfile(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$12$x"}
	users := newFakeUsers(alice)
	h := NewAuthHandler(users, testJWT())

	t.Run("get", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rr := httptest.NewRecorder()
		h.Profile(rr, req.WithContext(asUser(req.Context(), alice)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice@example.com", decode[dto.UserResponse](t, rr).Email)
	})

	t.Run("update", func(t *testing.T) {
		name := "Alice A."
		req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", jsonBody(t, dto.UpdateProfileRequest{DisplayName: &name}))
		rr := httptest.NewRecorder()
		h.Profile(rr, req.WithContext(asUser(req.Context(), alice)))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decode[dto.UserResponse](t, rr)
		require.NotNil(t, resp.DisplayName)
		assert.Equal(t, "Alice A.", *resp.DisplayName)
	})

	t.Run("update with nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", jsonBody(t, map[string]any{}))
		rr := httptest.NewRecorder()
		h.Profile(rr, req.WithContext(asUser(req.Context(), alice)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Profile(rr, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("deleted account", func(t *testing.T) {
		ghost := &models.User{ID: uuid.New(), Username: "ghost"}
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rr := httptest.NewRecorder()
		h.Profile(rr, req.WithContext(asUser(req.Context(), ghost)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
