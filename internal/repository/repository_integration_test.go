//go:build integration

package repository

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"FITTRACK_BACK-END/internal/models"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fittrack"),
		postgrescontainer.WithUsername("fittrack"),
		postgrescontainer.WithPassword("fittrack"),
		postgrescontainer.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, file, _, _ := runtime.Caller(0)
	schema, err := os.ReadFile(filepath.Join(filepath.Dir(file), "../../db/migrations/0001_init.up.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	return pool
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)

	users := NewUserRepository(pool)
	exercises := NewExerciseRepository(pool)
	feedback := NewFeedbackRepository(pool)

	alice := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "plain"}
	require.NoError(t, users.Create(ctx, alice))
	bob := &models.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, users.Create(ctx, bob))

	t.Run("users", func(t *testing.T) {
		err := users.Create(ctx, &models.User{Username: "alice", Email: "other@example.com"})
		assert.ErrorIs(t, err, ErrConflict)

		got, err := users.GetByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		mixed := &models.User{Username: "carol", Email: " Carol@Example.com"}
		require.NoError(t, users.Create(ctx, mixed))
		assert.Equal(t, "carol@example.com", mixed.Email)
		assert.ErrorIs(t, users.Create(ctx, &models.User{Username: "alice2", Email: "ALICE@example.com"}), ErrConflict)

		_, err = pool.Exec(ctx, `INSERT INTO users (username, email) VALUES ('alice3', 'Alice@Example.com')`)
		assert.ErrorIs(t, translate(err), ErrConflict)
		_, err = pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, mixed.ID)
		require.NoError(t, err)

		_, err = users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, users.UpdatePasswordHash(ctx, alice.ID, "$2a$12$hash"))
		creds, err := users.ListCredentials(ctx)
		require.NoError(t, err)
		require.Len(t, creds, 2)
		assert.Equal(t, "$2a$12$hash", creds[0].PasswordHash)

		name := "Alice"
		require.NoError(t, users.UpdateProfile(ctx, alice.ID, &name, nil))
		got, err = users.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DisplayName)
		assert.Equal(t, "Alice", *got.DisplayName)
	})

	t.Run("exercises", func(t *testing.T) {
		base := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, exercises.Create(ctx, &models.Exercise{
			UserID: alice.ID, Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 60, CreatedAt: base.Add(-time.Hour),
		}))
		said := "three sets of squats"
		require.NoError(t, exercises.CreateBatch(ctx, []models.Exercise{
			{UserID: alice.ID, Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100, Source: models.SourceVoice, WhatSaid: &said, CreatedAt: base},
			{UserID: bob.ID, Exercise: "Row", Sets: 1, Reps: 1},
		}))

		list, err := exercises.ListByUser(ctx, alice.ID, ExerciseFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Squat", list[0].Exercise)
		assert.Equal(t, models.SourceVoice, list[0].Source)
		assert.Equal(t, "Bench Press", list[1].Exercise)
		assert.Equal(t, models.SourceForm, list[1].Source)

		list, err = exercises.ListByUser(ctx, alice.ID, ExerciseFilter{Query: "bench"})
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, err = exercises.ListByUser(ctx, alice.ID, ExerciseFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Bench Press", list[0].Exercise)

		_, err = exercises.Get(ctx, bob.ID, list[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, exercises.Delete(ctx, bob.ID, list[0].ID), ErrNotFound)
		require.NoError(t, exercises.Delete(ctx, alice.ID, list[0].ID))
	})

	t.Run("feedback", func(t *testing.T) {
		note := &models.Feedback{UserID: alice.ID, Username: "alice", Description: "love it"}
		require.NoError(t, feedback.Create(ctx, note))

		_, err := feedback.Update(ctx, bob.ID, note.ID, "hijack")
		assert.ErrorIs(t, err, ErrNotFound)

		updated, err := feedback.Update(ctx, alice.ID, note.ID, "still love it")
		require.NoError(t, err)
		assert.Equal(t, "still love it", updated.Description)

		items, err := feedback.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, feedback.Delete(ctx, alice.ID, note.ID))
		assert.ErrorIs(t, feedback.Delete(ctx, alice.ID, note.ID), ErrNotFound)
	})

	t.Run("cascade", func(t *testing.T) {
		_, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, bob.ID)
		require.NoError(t, err)
		list, err := exercises.ListByUser(ctx, bob.ID, ExerciseFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
