package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"FITTRACK_BACK-END/internal/models"
)

const feedbackColumns = `id, user_id, username, description, created_at, updated_at`

// FeedbackRepository reads and writes the feedback table
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func scanFeedback(row scanner) (*models.Feedback, error) {
	var f models.Feedback
	if err := row.Scan(&f.ID, &f.UserID, &f.Username, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// ListByUser returns a user's notes, newest first
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+feedbackColumns+` FROM feedback WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	items := make([]models.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

// Create stores a note
func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	now := time.Now().UTC()
	f.CreatedAt, f.UpdatedAt = now, now

	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback (`+feedbackColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.UserID, f.Username, f.Description, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", translate(err))
	}
	return nil
}

// Update replaces the description of a note owned by userID
func (r *FeedbackRepository) Update(ctx context.Context, userID, id uuid.UUID, description string) (*models.Feedback, error) {
	return scanFeedback(r.db.QueryRow(ctx,
		`UPDATE feedback SET description = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+feedbackColumns, id, userID, description))
}

// Delete removes a note owned by userID
func (r *FeedbackRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
