package handlers

import (
	"log"
	"net/http"
	"time"

	"FITTRACK_BACK-END/internal/analytics"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
)

const (
	defaultRecentWorkouts = 5
	maxRecentWorkouts     = 50
	rowsPerWorkout        = 10
)

// AnalyticsHandler serves the dashboard reductions
type AnalyticsHandler struct {
	exercises ExerciseStore
	loc       *time.Location
	fetchSize int
	now       func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(exercises ExerciseStore, loc *time.Location, fetchSize int) *AnalyticsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsHandler{exercises: exercises, loc: loc, fetchSize: fetchSize, now: time.Now}
}

// QuickStats returns the home screen summary
// @Summary Quick stats
// @Description Totals, streak and averages over the user's recent exercises
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.QuickStats "Quick stats"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/analytics/quick-stats [get]
func (h *AnalyticsHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, ok := h.load(w, r, h.fetchSize)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, analytics.ComputeQuickStats(rows, h.now(), h.loc))
}

// Dashboard returns the full analytics screen
// @Summary Analytics dashboard
// @Description Distributions, weekly and monthly buckets, today and recent exercises
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param timeframe query string false "week, month or all (default all)"
// @Success 200 {object} analytics.Dashboard "Dashboard"
// @Failure 400 {object} dto.ErrorResponse "Invalid timeframe"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tf, err := analytics.ParseTimeframe(r.URL.Query().Get("timeframe"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid timeframe", "timeframe must be week, month or all")
		return
	}

	rows, ok := h.load(w, r, h.fetchSize)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, analytics.ComputeDashboard(rows, tf, h.now(), h.loc))
}

// RecentWorkouts returns the latest training days
// @Summary Recent workouts
// @Description Exercises grouped into one summary per training day
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of days (default 5)"
// @Success 200 {array} analytics.WorkoutSummary "Recent workouts"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/analytics/recent-workouts [get]
func (h *AnalyticsHandler) RecentWorkouts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit, err := intParam(r.URL.Query().Get("limit"), defaultRecentWorkouts)
	if err != nil || limit <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
		return
	}
	if limit > maxRecentWorkouts {
		limit = maxRecentWorkouts
	}

	rows, ok := h.load(w, r, limit*rowsPerWorkout)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, analytics.RecentWorkouts(rows, limit, h.loc))
}

func (h *AnalyticsHandler) load(w http.ResponseWriter, r *http.Request, limit int) ([]models.Exercise, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return nil, false
	}

	rows, err := h.exercises.ListByUser(r.Context(), userID, repository.ExerciseFilter{Limit: limit})
	if err != nil {
		log.Printf("analytics: load exercises: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load analytics", "Please try again later")
		return nil, false
	}
	return rows, true
}
