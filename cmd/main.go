// @title FitTrack Backend API
// @version 1.0
// @description FitTrack Backend API for workout logging, analytics and the voice assistant
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "FITTRACK_BACK-END/docs" // This is required for swagger
	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/database"
	"FITTRACK_BACK-END/internal/events"
	"FITTRACK_BACK-END/internal/handlers"
	"FITTRACK_BACK-END/internal/middleware"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/routes"
	"FITTRACK_BACK-END/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	log.Printf("Connected to %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// --- Dependencies ---

	users := repository.NewUserRepository(pool)
	exercises := repository.NewExerciseRepository(pool)
	feedback := repository.NewFeedbackRepository(pool)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.IsEventsConfigured() {
		publisher = events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		log.Printf("Publishing exercise events to %s", cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("close publisher: %v", err)
		}
	}()

	// --- HTTP Handlers ---

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:       handlers.NewAuthHandler(users, &cfg.JWT),
		GoogleAuth: handlers.NewGoogleAuthHandler(users, cfg),
		Health:     handlers.NewHealthHandler(pool),
		Exercises:  handlers.NewExerciseHandler(exercises, users, publisher, cfg.Webhook.CallbackSecret),
		Feedback:   handlers.NewFeedbackHandler(feedback),
		Analytics:  handlers.NewAnalyticsHandler(exercises, cfg.Location(), cfg.Analytics.FetchSize),
		Assistant:  handlers.NewAssistantHandler(webhook.NewClient(cfg.Webhook), cfg.Webhook.MaxAudioBytes),
	}, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := c.Handler(middleware.Metrics(middleware.RequestLogger(mux)))

	// --- HTTP Server + Graceful Shutdown ---

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
