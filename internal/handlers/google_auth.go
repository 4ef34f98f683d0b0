package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/middleware"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
)

const (
	oauthStateCookie   = "oauth_state"
	oauthStateTTL      = 10 * time.Minute
	maxUsernameRetries = 3
)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	users        UserStore
	oauth2Config *oauth2.Config
	config       *config.Config
	// fetchUser exchanges an authorization code for the Google profile
	fetchUser func(ctx context.Context, code string) (*dto.GoogleUserInfo, error)
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(users UserStore, cfg *config.Config) *GoogleAuthHandler {
	h := &GoogleAuthHandler{
		users:  users,
		config: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
	h.fetchUser = h.exchangeAndFetch
	return h
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Returns the Google consent URL and sets a short-lived state cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 503 {object} dto.ErrorResponse "Google sign-in not configured"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.config.IsGoogleOAuthConfigured() {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Google sign-in unavailable", "Google OAuth is not configured")
		return
	}

	// Generate state parameter for CSRF protection
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		Secure:   !h.config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline),
		State:   state,
	})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Exchanges the authorization code, signs the user in and redirects to the frontend with a token
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State returned by /api/auth/google/login"
// @Success 302 "Redirect to the frontend callback"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Google sign-in not configured"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.config.IsGoogleOAuthConfigured() {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Google sign-in unavailable", "Google OAuth is not configured")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid state", "OAuth state does not match")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/api/auth/google", MaxAge: -1})

	info, err := h.fetchUser(r.Context(), code)
	if err != nil {
		log.Printf("google: fetch user: %v", err)
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", "Could not verify Google account")
		return
	}
	if info.Email == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", "Google account has no email")
		return
	}
	if !info.Verified {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", "Google email is not verified")
		return
	}

	user, err := h.findOrCreate(r.Context(), info)
	if err != nil {
		log.Printf("google: find or create user: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to sign in", "Please try again later")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Email, &h.config.JWT)
	if err != nil {
		log.Printf("google: generate token: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "Please try again later")
		return
	}

	redirect, err := url.Parse(h.config.GoogleOAuth.FrontendURL)
	if err != nil {
		log.Printf("google: bad frontend url: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to sign in", "Frontend callback misconfigured")
		return
	}
	q := redirect.Query()
	q.Set("token", token)
	q.Set("user_id", user.ID.String())
	q.Set("username", user.Username)
	q.Set("provider", "google")
	redirect.RawQuery = q.Encode()

	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

func (h *GoogleAuthHandler) findOrCreate(ctx context.Context, info *dto.GoogleUserInfo) (*models.User, error) {
	displayName := optionalString(info.Name)
	avatar := optionalString(info.Picture)

	user, err := h.users.GetByEmail(ctx, info.Email)
	if err == nil {
		if err := h.users.UpdateProfile(ctx, user.ID, displayName, avatar); err != nil {
			log.Printf("google: update profile for %s: %v", user.Username, err)
		}
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	base := usernameFromEmail(info.Email)
	for attempt := 0; attempt < maxUsernameRetries; attempt++ {
		username := base
		if attempt > 0 {
			username = fmt.Sprintf("%s%s", base, uuid.NewString()[:4])
		}
		user = &models.User{
			Username:    username,
			Email:       info.Email,
			DisplayName: displayName,
			AvatarURL:   avatar,
		}
		err = h.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no free username for %s: %w", info.Email, err)
}

// exchangeAndFetch fetches user information from Google
func (h *GoogleAuthHandler) exchangeAndFetch(ctx context.Context, code string) (*dto.GoogleUserInfo, error) {
	token, err := h.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(h.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}

// usernameFromEmail derives a username from the local part of an email
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > 30 {
		name = name[:30]
	}
	for len(name) < minUsernameLength {
		name += "_"
	}
	return name
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
