package handlers

import (
	"context"

	"github.com/google/uuid"

	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
)

// UserStore is the user persistence used by the auth handlers
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName, avatarURL *string) error
}

// ExerciseStore is the exercise persistence used by the exercise and analytics handlers
type ExerciseStore interface {
	Create(ctx context.Context, e *models.Exercise) error
	CreateBatch(ctx context.Context, exercises []models.Exercise) error
	ListByUser(ctx context.Context, userID uuid.UUID, f repository.ExerciseFilter) ([]models.Exercise, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Exercise, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// FeedbackStore is the feedback persistence
type FeedbackStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error)
	Create(ctx context.Context, f *models.Feedback) error
	Update(ctx context.Context, userID, id uuid.UUID, description string) (*models.Feedback, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}
