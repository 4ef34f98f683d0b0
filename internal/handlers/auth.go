package handlers

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/middleware"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72

	maxDisplayNameLength = 100
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users UserStore
	jwt   *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users UserStore, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwtCfg}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with username, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if msg := validateRegistration(req); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", msg)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", "Could not process password")
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Email or username already registered")
			return
		}
		log.Printf("register: create user: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", "Please try again later")
		return
	}

	h.writeAuthResponse(w, http.StatusCreated, user)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with username (or email) and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if (req.Username == "" && req.Email == "") || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Username and password are required")
		return
	}

	var (
		user *models.User
		err  error
	)
	if req.Username != "" {
		user, err = h.users.GetByUsername(r.Context(), req.Username)
	} else {
		user, err = h.users.GetByEmail(r.Context(), req.Email)
	}
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("login: load user: %v", err)
		}
		writeInvalidCredentials(w)
		return
	}

	if !h.checkPassword(r, user, req.Password) {
		writeInvalidCredentials(w)
		return
	}

	h.writeAuthResponse(w, http.StatusOK, user)
}

// checkPassword verifies the password. A legacy plaintext password that
// matches is replaced by its hash before the login succeeds.
func (h *AuthHandler) checkPassword(r *http.Request, user *models.User, password string) bool {
	if user.PasswordHash == "" {
		return false
	}
	if utils.IsHashed(user.PasswordHash) {
		return utils.VerifyPassword(password, user.PasswordHash)
	}

	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(password)) != 1 {
		return false
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("login: rehash password for %s: %v", user.Username, err)
		return true
	}
	if err := h.users.UpdatePasswordHash(r.Context(), user.ID, hashed); err != nil {
		log.Printf("login: store rehashed password for %s: %v", user.Username, err)
		return true
	}
	user.PasswordHash = hashed
	log.Printf("login: migrated plaintext password for %s", user.Username)
	return true
}

// GetProfile returns the current user's profile
// @Summary Get user profile
// @Description Get the current authenticated user's profile information
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "User profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	h.writeProfile(w, r, userID)
}

func (h *AuthHandler) writeProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "Account no longer exists")
			return
		}
		log.Printf("profile: load user: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load profile", "Please try again later")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// Profile dispatches /api/auth/profile by method
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetProfile(w, r)
	case http.MethodPut:
		h.UpdateProfile(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// UpdateProfile changes the display name or avatar of the current user
// @Summary Update user profile
// @Description Update display name and avatar URL; omitted fields are kept
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.DisplayName == nil && req.AvatarURL == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Nothing to update", "Provide display_name or avatar_url")
		return
	}
	if req.DisplayName != nil && len([]rune(*req.DisplayName)) > maxDisplayNameLength {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Display name is too long")
		return
	}

	if err := h.users.UpdateProfile(r.Context(), userID, req.DisplayName, req.AvatarURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "Account no longer exists")
			return
		}
		log.Printf("profile: update: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update profile", "Please try again later")
		return
	}

	h.writeProfile(w, r, userID)
}

func (h *AuthHandler) writeAuthResponse(w http.ResponseWriter, status int, user *models.User) {
	token, err := middleware.GenerateToken(user.ID, user.Username, user.Email, h.jwt)
	if err != nil {
		log.Printf("auth: generate token: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "Please try again later")
		return
	}

	utils.WriteJSONResponse(w, status, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func validateRegistration(req dto.RegisterRequest) string {
	switch {
	case req.Username == "" || req.Email == "" || req.Password == "":
		return "Username, email, and password are required"
	case len([]rune(req.Username)) < minUsernameLength:
		return "Username must be at least 3 characters"
	case !emailPattern.MatchString(req.Email):
		return "Please enter a valid email address"
	case len(req.Password) < minPasswordLength:
		return "Password must be at least 6 characters"
	case len(req.Password) > maxPasswordBytes:
		return "Password must be at most 72 bytes"
	}
	return ""
}

func writeInvalidCredentials(w http.ResponseWriter) {
	utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Username or password is incorrect")
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   utils.FormatTimestamp(u.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(u.UpdatedAt),
	}
}
