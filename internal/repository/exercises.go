package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"FITTRACK_BACK-END/internal/models"
)

const exerciseColumns = `id, user_id, exercise, exercise_type, sets, reps, weight, userweight, time, mood, whatsaid, source, created_at`

// ExerciseFilter narrows a listing
type ExerciseFilter struct {
	Limit  int
	Offset int
	// Query matches exercise names containing it, case-insensitively
	Query string
}

// ExerciseRepository reads and writes the exercises table
type ExerciseRepository struct {
	db *pgxpool.Pool
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func scanExercise(row scanner) (*models.Exercise, error) {
	var e models.Exercise
	if err := row.Scan(&e.ID, &e.UserID, &e.Exercise, &e.ExerciseType, &e.Sets, &e.Reps,
		&e.Weight, &e.UserWeight, &e.Time, &e.Mood, &e.WhatSaid, &e.Source, &e.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

const insertExercise = `INSERT INTO exercises (` + exerciseColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func prepareExercise(e *models.Exercise) []any {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Source == "" {
		e.Source = models.SourceForm
	}
	return []any{e.ID, e.UserID, e.Exercise, e.ExerciseType, e.Sets, e.Reps,
		e.Weight, e.UserWeight, e.Time, e.Mood, e.WhatSaid, e.Source, e.CreatedAt}
}

// Create stores one exercise row
func (r *ExerciseRepository) Create(ctx context.Context, e *models.Exercise) error {
	if _, err := r.db.Exec(ctx, insertExercise, prepareExercise(e)...); err != nil {
		return fmt.Errorf("insert exercise: %w", translate(err))
	}
	return nil
}

// CreateBatch stores several rows in one transaction; either all or none are kept
func (r *ExerciseRepository) CreateBatch(ctx context.Context, exercises []models.Exercise) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	for i := range exercises {
		if _, err = tx.Exec(ctx, insertExercise, prepareExercise(&exercises[i])...); err != nil {
			return fmt.Errorf("insert exercise %d: %w", i, translate(err))
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListByUser returns a user's rows, newest first
func (r *ExerciseRepository) ListByUser(ctx context.Context, userID uuid.UUID, f ExerciseFilter) ([]models.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE user_id = $1`
	args := []any{userID}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		query += fmt.Sprintf(` AND exercise ILIKE $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, *e)
	}
	return exercises, rows.Err()
}

// Get returns one row owned by userID
func (r *ExerciseRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Exercise, error) {
	return scanExercise(r.db.QueryRow(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1 AND user_id = $2`, id, userID))
}

// Delete removes one row owned by userID
func (r *ExerciseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
