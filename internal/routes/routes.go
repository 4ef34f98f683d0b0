package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/handlers"
	"FITTRACK_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth       *handlers.AuthHandler
	GoogleAuth *handlers.GoogleAuthHandler
	Health     *handlers.HealthHandler
	Exercises  *handlers.ExerciseHandler
	Feedback   *handlers.FeedbackHandler
	Analytics  *handlers.AnalyticsHandler
	Assistant  *handlers.AssistantHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/register", h.Auth.Register)
	mux.HandleFunc("/api/auth/login", h.Auth.Login)
	mux.HandleFunc("/api/auth/profile", auth(h.Auth.Profile))
	mux.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
	mux.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)

	// Exercise routes
	mux.HandleFunc("/api/exercises", auth(h.Exercises.Exercises))
	mux.HandleFunc("/api/exercises/", auth(h.Exercises.ExerciseByID))
	mux.HandleFunc("/api/webhooks/exercises", h.Exercises.ExerciseCallback)

	// Feedback routes
	mux.HandleFunc("/api/feedback", auth(h.Feedback.Feedback))
	mux.HandleFunc("/api/feedback/", auth(h.Feedback.FeedbackByID))

	// Analytics routes
	mux.HandleFunc("/api/analytics/quick-stats", auth(h.Analytics.QuickStats))
	mux.HandleFunc("/api/analytics/dashboard", auth(h.Analytics.Dashboard))
	mux.HandleFunc("/api/analytics/recent-workouts", auth(h.Analytics.RecentWorkouts))

	// Assistant routes
	mux.HandleFunc("/api/voice", auth(h.Assistant.Voice))
	mux.HandleFunc("/api/chat", auth(h.Assistant.Chat))

	// Operational routes
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("FitTrack backend is running."))
}
