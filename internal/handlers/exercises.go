package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/events"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/observability"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
)

const (
	defaultMood       = "motivated"
	defaultListLimit  = 50
	maxListLimit      = 1000
	maxCallbackRows   = 100
	webhookSecretHdr  = "X-Webhook-Secret"
	exercisesBasePath = "/api/exercises/"
)

// ExerciseHandler handles exercise recording and listing
type ExerciseHandler struct {
	exercises      ExerciseStore
	users          UserStore
	publisher      events.Publisher
	callbackSecret string
}

// NewExerciseHandler creates a new ExerciseHandler instance
func NewExerciseHandler(exercises ExerciseStore, users UserStore, publisher events.Publisher, callbackSecret string) *ExerciseHandler {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ExerciseHandler{
		exercises:      exercises,
		users:          users,
		publisher:      publisher,
		callbackSecret: callbackSecret,
	}
}

// Exercises dispatches /api/exercises by method
func (h *ExerciseHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateExercise(w, r)
	case http.MethodGet:
		h.ListExercises(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ExerciseByID dispatches /api/exercises/{id} by method
func (h *ExerciseHandler) ExerciseByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetExercise(w, r)
	case http.MethodDelete:
		h.DeleteExercise(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateExercise records a form-submitted set
// @Summary Record an exercise
// @Description Store one workout set entered through the form
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExerciseRequest true "Exercise data"
// @Success 201 {object} dto.ExerciseResponse "Exercise stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/exercises [post]
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.CreateExerciseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	ex := models.Exercise{
		UserID:       userID,
		Exercise:     strings.TrimSpace(req.Exercise),
		ExerciseType: strings.TrimSpace(req.ExerciseType),
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		UserWeight:   req.UserWeight,
		Time:         req.Time,
		Mood:         moodOrDefault(req.Mood),
		Source:       models.SourceForm,
	}
	if msg := validateExercise(ex); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", msg)
		return
	}

	if req.CreatedAt != nil && strings.TrimSpace(*req.CreatedAt) != "" {
		createdAt, err := utils.ParseDate(*req.CreatedAt)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date format", "Use YYYY-MM-DD or RFC3339")
			return
		}
		ex.CreatedAt = createdAt.UTC()
	}

	if err := h.exercises.Create(r.Context(), &ex); err != nil {
		log.Printf("exercises: create: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save exercise", "Please try again later")
		return
	}
	h.recorded(r.Context(), models.SourceForm, ex)

	utils.WriteJSONResponse(w, http.StatusCreated, toExerciseResponse(ex))
}

// ListExercises returns the caller's exercises, newest first
// @Summary List exercises
// @Description List the authenticated user's exercises, newest first
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param offset query int false "Rows to skip"
// @Param q query string false "Only names containing this text"
// @Success 200 {object} dto.ExerciseListResponse "Exercises"
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/exercises [get]
func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	query := r.URL.Query()
	limit, err := intParam(query.Get("limit"), defaultListLimit)
	if err != nil || limit <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset, err := intParam(query.Get("offset"), 0)
	if err != nil || offset < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid offset", "offset must be zero or greater")
		return
	}

	list, err := h.exercises.ListByUser(r.Context(), userID, repository.ExerciseFilter{
		Limit:  limit,
		Offset: offset,
		Query:  query.Get("q"),
	})
	if err != nil {
		log.Printf("exercises: list: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load exercises", "Please try again later")
		return
	}

	out := make([]dto.ExerciseResponse, 0, len(list))
	for _, ex := range list {
		out = append(out, toExerciseResponse(ex))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ExerciseListResponse{
		Exercises:  out,
		Pagination: dto.Pagination{Limit: limit, Offset: offset, Count: len(out)},
	})
}

// GetExercise returns one of the caller's exercises
// @Summary Get exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.ExerciseResponse "Exercise"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /api/exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := ownedID(w, r, exercisesBasePath)
	if !ok {
		return
	}

	ex, err := h.exercises.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Exercise not found", "No exercise with that id")
			return
		}
		log.Printf("exercises: get: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load exercise", "Please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toExerciseResponse(*ex))
}

// DeleteExercise removes one of the caller's exercises
// @Summary Delete exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /api/exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := ownedID(w, r, exercisesBasePath)
	if !ok {
		return
	}

	if err := h.exercises.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Exercise not found", "No exercise with that id")
			return
		}
		log.Printf("exercises: delete: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete exercise", "Please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Exercise deleted"})
}

// ExerciseCallback stores exercises extracted from a voice recording
// @Summary Voice workflow callback
// @Description Called by the automation workflow with the sets it extracted from a recording
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared callback secret"
// @Param request body dto.ExerciseCallbackRequest true "Extracted exercises"
// @Success 201 {object} dto.ExerciseCallbackResponse "Stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Bad secret"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 503 {object} dto.ErrorResponse "Callbacks disabled"
// @Router /api/webhooks/exercises [post]
func (h *ExerciseHandler) ExerciseCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.callbackSecret == "" {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Callbacks disabled", "No callback secret configured")
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.Header.Get(webhookSecretHdr)), []byte(h.callbackSecret)) != 1 {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid webhook secret")
		return
	}

	var req dto.ExerciseCallbackRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if len(req.Exercises) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "At least one exercise is required")
		return
	}
	if len(req.Exercises) > maxCallbackRows {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Too many exercises in one callback")
		return
	}

	user, status, msg := h.resolveCallbackUser(r.Context(), req)
	if user == nil {
		utils.WriteErrorResponse(w, status, "Unknown user", msg)
		return
	}

	now := time.Now().UTC()
	rows := make([]models.Exercise, 0, len(req.Exercises))
	for i, rec := range req.Exercises {
		ex := models.Exercise{
			UserID:       user.ID,
			Exercise:     strings.TrimSpace(rec.Exercise),
			ExerciseType: strings.TrimSpace(rec.ExerciseType),
			Sets:         rec.Sets,
			Reps:         rec.Reps,
			Weight:       rec.Weight,
			UserWeight:   rec.UserWeight,
			Time:         rec.Time,
			Mood:         moodOrDefault(rec.Mood),
			WhatSaid:     optionalString(firstNonEmpty(rec.WhatSaid, req.WhatSaid)),
			Source:       models.SourceVoice,
			CreatedAt:    now,
		}
		if msg := validateExercise(ex); msg != "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "exercise "+strconv.Itoa(i)+": "+msg)
			return
		}
		rows = append(rows, ex)
	}

	if err := h.exercises.CreateBatch(r.Context(), rows); err != nil {
		log.Printf("exercises: callback store: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save exercises", "Please try again later")
		return
	}
	h.recorded(r.Context(), models.SourceVoice, rows...)

	out := make([]dto.ExerciseResponse, 0, len(rows))
	for _, ex := range rows {
		out = append(out, toExerciseResponse(ex))
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.ExerciseCallbackResponse{Stored: len(out), Exercises: out})
}

func (h *ExerciseHandler) resolveCallbackUser(ctx context.Context, req dto.ExerciseCallbackRequest) (*models.User, int, string) {
	var (
		user *models.User
		err  error
	)
	switch {
	case strings.TrimSpace(req.UserID) != "":
		id, perr := uuid.Parse(strings.TrimSpace(req.UserID))
		if perr != nil {
			return nil, http.StatusBadRequest, "user_id is not a valid UUID"
		}
		user, err = h.users.GetByID(ctx, id)
	case strings.TrimSpace(req.Username) != "":
		user, err = h.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	default:
		return nil, http.StatusBadRequest, "user_id or username is required"
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, http.StatusNotFound, "No such user"
		}
		log.Printf("exercises: callback user lookup: %v", err)
		return nil, http.StatusInternalServerError, "Please try again later"
	}
	return user, 0, ""
}

// recorded updates metrics and publishes events for stored rows. Publish
// failures are logged and never fail the request.
func (h *ExerciseHandler) recorded(ctx context.Context, source string, rows ...models.Exercise) {
	observability.RecordExercises(source, len(rows))
	if err := h.publisher.PublishExerciseRecorded(ctx, rows...); err != nil {
		observability.RecordEventPublishFailure()
		log.Printf("exercises: publish events: %v", err)
	}
}

func validateExercise(ex models.Exercise) string {
	switch {
	case ex.Exercise == "":
		return "Exercise name is required"
	case ex.Sets < 0 || ex.Reps < 0 || ex.Time < 0:
		return "Sets, reps and time cannot be negative"
	case ex.Weight < 0 || ex.UserWeight < 0:
		return "Weight cannot be negative"
	}
	return ""
}

func moodOrDefault(mood string) string {
	if m := strings.TrimSpace(mood); m != "" {
		return m
	}
	return defaultMood
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// ownedID reads the caller and the trailing path id. On failure it writes the
// response and returns ok=false.
func ownedID(w http.ResponseWriter, r *http.Request, prefix string) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return uuid.Nil, uuid.Nil, false
	}

	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid id", "id must be a UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

func toExerciseResponse(ex models.Exercise) dto.ExerciseResponse {
	return dto.ExerciseResponse{
		ID:           ex.ID.String(),
		UserID:       ex.UserID.String(),
		Exercise:     ex.Exercise,
		ExerciseType: ex.ExerciseType,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		Weight:       ex.Weight,
		UserWeight:   ex.UserWeight,
		Time:         ex.Time,
		Mood:         ex.Mood,
		WhatSaid:     ex.WhatSaid,
		Source:       ex.Source,
		CreatedAt:    utils.FormatTimestamp(ex.CreatedAt),
	}
}
