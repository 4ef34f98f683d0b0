package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/models"
)

const testCallbackSecret = "callback-secret"

func newExerciseFixture(users ...*models.User) (*ExerciseHandler, *fakeExercises, *fakePublisher) {
	store := &fakeExercises{}
	pub := &fakePublisher{}
	return NewExerciseHandler(store, newFakeUsers(users...), pub, testCallbackSecret), store, pub
}

func authed(req *http.Request, u *models.User) *http.Request {
	return req.WithContext(asUser(req.Context(), u))
}

func TestCreateExercise(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	h, store, pub := newExerciseFixture(alice)

	req := httptest.NewRequest(http.MethodPost, "/api/exercises", jsonBody(t, dto.CreateExerciseRequest{
		Exercise: " Bench Press ", ExerciseType: "strength", Sets: 3, Reps: 10, Weight: 80,
	}))
	rr := httptest.NewRecorder()
	h.Exercises(rr, authed(req, alice))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[dto.ExerciseResponse](t, rr)
	assert.Equal(t, "Bench Press", resp.Exercise)
	assert.Equal(t, "motivated", resp.Mood)
	assert.Equal(t, models.SourceForm, resp.Source)
	assert.Equal(t, alice.ID.String(), resp.UserID)

	require.Len(t, store.rows, 1)
	assert.Equal(t, alice.ID, store.rows[0].UserID)
	require.Len(t, pub.published, 1)
	assert.Equal(t, store.rows[0].ID, pub.published[0].ID)
}

func TestCreateExerciseWithDate(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	h, store, _ := newExerciseFixture(alice)

	date := "2026-03-01"
	req := httptest.NewRequest(http.MethodPost, "/api/exercises", jsonBody(t, dto.CreateExerciseRequest{
		Exercise: "Squat", Sets: 5, Reps: 5, Weight: 100, Mood: "tired", CreatedAt: &date,
	}))
	rr := httptest.NewRecorder()
	h.Exercises(rr, authed(req, alice))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.rows, 1)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), store.rows[0].CreatedAt)
	assert.Equal(t, "tired", store.rows[0].Mood)
}

func TestCreateExerciseValidation(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	badDate := "03/01/2026"

	tests := []struct {
		name string
		req  dto.CreateExerciseRequest
	}{
		{"missing name", dto.CreateExerciseRequest{Sets: 3, Reps: 10}},
		{"blank name", dto.CreateExerciseRequest{Exercise: "   ", Sets: 3}},
		{"negative reps", dto.CreateExerciseRequest{Exercise: "Row", Reps: -1}},
		{"negative weight", dto.CreateExerciseRequest{Exercise: "Row", Weight: -5}},
		{"bad date", dto.CreateExerciseRequest{Exercise: "Row", CreatedAt: &badDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, pub := newExerciseFixture(alice)
			rr := httptest.NewRecorder()
			h.Exercises(rr, authed(httptest.NewRequest(http.MethodPost, "/api/exercises", jsonBody(t, tt.req)), alice))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, store.rows)
			assert.Empty(t, pub.published)
		})
	}
}

func TestCreateExerciseStoreFailure(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	h, store, pub := newExerciseFixture(alice)
	store.failWrite = true

	rr := httptest.NewRecorder()
	h.Exercises(rr, authed(httptest.NewRequest(http.MethodPost, "/api/exercises",
		jsonBody(t, dto.CreateExerciseRequest{Exercise: "Row", Sets: 1, Reps: 1})), alice))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, pub.published)
}

func TestCreateExercisePublishFailureIsIgnored(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	h, store, pub := newExerciseFixture(alice)
	pub.err = errStoreDown

	rr := httptest.NewRecorder()
	h.Exercises(rr, authed(httptest.NewRequest(http.MethodPost, "/api/exercises",
		jsonBody(t, dto.CreateExerciseRequest{Exercise: "Row", Sets: 1, Reps: 1})), alice))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, store.rows, 1)
}

func TestListExercises(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	bob := &models.User{ID: uuid.New(), Username: "bob"}
	h, store, _ := newExerciseFixture(alice, bob)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"Squat", "Bench Press", "Deadlift", "Incline Bench"} {
		store.rows = append(store.rows, models.Exercise{
			ID: uuid.New(), UserID: alice.ID, Exercise: name, Sets: 1, Reps: 1, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	store.rows = append(store.rows, models.Exercise{ID: uuid.New(), UserID: bob.ID, Exercise: "Squat", CreatedAt: base})

	list := func(query string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.Exercises(rr, authed(httptest.NewRequest(http.MethodGet, "/api/exercises"+query, nil), alice))
		return rr
	}

	t.Run("newest first with defaults", func(t *testing.T) {
		rr := list("")
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[dto.ExerciseListResponse](t, rr)
		require.Len(t, resp.Exercises, 4)
		assert.Equal(t, "Incline Bench", resp.Exercises[0].Exercise)
		assert.Equal(t, "Squat", resp.Exercises[3].Exercise)
		assert.Equal(t, dto.Pagination{Limit: 50, Offset: 0, Count: 4}, resp.Pagination)
	})

	t.Run("paged", func(t *testing.T) {
		resp := decode[dto.ExerciseListResponse](t, list("?limit=2&offset=1"))
		require.Len(t, resp.Exercises, 2)
		assert.Equal(t, "Deadlift", resp.Exercises[0].Exercise)
		assert.Equal(t, "Bench Press", resp.Exercises[1].Exercise)
	})

	t.Run("search", func(t *testing.T) {
		resp := decode[dto.ExerciseListResponse](t, list("?q=bench"))
		assert.Len(t, resp.Exercises, 2)
		assert.Equal(t, "bench", store.lastFilter.Query)
	})

	t.Run("limit is capped", func(t *testing.T) {
		resp := decode[dto.ExerciseListResponse](t, list("?limit=5000"))
		assert.Equal(t, 1000, resp.Pagination.Limit)
		assert.Equal(t, 1000, store.lastFilter.Limit)
	})

	for _, q := range []string{"?limit=0", "?limit=-3", "?limit=ten", "?offset=-1", "?offset=x"} {
		t.Run("rejects "+q, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, list(q).Code)
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Exercises(rr, httptest.NewRequest(http.MethodGet, "/api/exercises", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestExerciseByID(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	bob := &models.User{ID: uuid.New(), Username: "bob"}
	h, store, _ := newExerciseFixture(alice, bob)

	own := models.Exercise{ID: uuid.New(), UserID: alice.ID, Exercise: "Squat", CreatedAt: time.Now().UTC()}
	other := models.Exercise{ID: uuid.New(), UserID: bob.ID, Exercise: "Row", CreatedAt: time.Now().UTC()}
	store.rows = append(store.rows, own, other)

	call := func(method, id string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.ExerciseByID(rr, authed(httptest.NewRequest(method, "/api/exercises/"+id, nil), alice))
		return rr
	}

	rr := call(http.MethodGet, own.ID.String())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Squat", decode[dto.ExerciseResponse](t, rr).Exercise)

	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, other.ID.String()).Code)
	assert.Equal(t, http.StatusNotFound, call(http.MethodDelete, other.ID.String()).Code)
	assert.Equal(t, http.StatusBadRequest, call(http.MethodGet, "not-a-uuid").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, call(http.MethodPatch, own.ID.String()).Code)

	assert.Equal(t, http.StatusOK, call(http.MethodDelete, own.ID.String()).Code)
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, own.ID.String()).Code)
	assert.Len(t, store.rows, 1)
}

func callbackRequest(t *testing.T, secret string, body dto.ExerciseCallbackRequest) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/exercises", jsonBody(t, body))
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}
	return req
}

func TestExerciseCallback(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	sample := []dto.CallbackExerciseRecord{
		{Exercise: "Push Up", Sets: 3, Reps: 20},
		{Exercise: "Squat", Sets: 3, Reps: 10, Weight: 60, WhatSaid: "three sets of squats at sixty"},
	}

	t.Run("by user id", func(t *testing.T) {
		h, store, pub := newExerciseFixture(alice)
		rr := httptest.NewRecorder()
		h.ExerciseCallback(rr, callbackRequest(t, testCallbackSecret, dto.ExerciseCallbackRequest{
			UserID: alice.ID.String(), WhatSaid: "push ups and squats", Exercises: sample,
		}))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		resp := decode[dto.ExerciseCallbackResponse](t, rr)
		assert.Equal(t, 2, resp.Stored)

		require.Len(t, store.rows, 2)
		for _, row := range store.rows {
			assert.Equal(t, alice.ID, row.UserID)
			assert.Equal(t, models.SourceVoice, row.Source)
			assert.Equal(t, "motivated", row.Mood)
			require.NotNil(t, row.WhatSaid)
		}
		assert.Equal(t, "push ups and squats", *store.rows[0].WhatSaid)
		assert.Equal(t, "three sets of squats at sixty", *store.rows[1].WhatSaid)
		assert.Len(t, pub.published, 2)
	})

	t.Run("by username", func(t *testing.T) {
		h, store, _ := newExerciseFixture(alice)
		rr := httptest.NewRecorder()
		h.ExerciseCallback(rr, callbackRequest(t, testCallbackSecret, dto.ExerciseCallbackRequest{
			Username: "alice", Exercises: sample[:1],
		}))
		require.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, store.rows, 1)
		assert.Nil(t, store.rows[0].WhatSaid)
	})

	failures := []struct {
		name   string
		secret string
		body   dto.ExerciseCallbackRequest
		status int
	}{
		{"missing secret", "", dto.ExerciseCallbackRequest{Username: "alice", Exercises: sample}, http.StatusUnauthorized},
		{"wrong secret", "guess", dto.ExerciseCallbackRequest{Username: "alice", Exercises: sample}, http.StatusUnauthorized},
		{"no rows", testCallbackSecret, dto.ExerciseCallbackRequest{Username: "alice"}, http.StatusBadRequest},
		{"no owner", testCallbackSecret, dto.ExerciseCallbackRequest{Exercises: sample}, http.StatusBadRequest},
		{"bad user id", testCallbackSecret, dto.ExerciseCallbackRequest{UserID: "42", Exercises: sample}, http.StatusBadRequest},
		{"unknown user", testCallbackSecret, dto.ExerciseCallbackRequest{Username: "mallory", Exercises: sample}, http.StatusNotFound},
		{"invalid row", testCallbackSecret, dto.ExerciseCallbackRequest{Username: "alice", Exercises: []dto.CallbackExerciseRecord{
			{Exercise: "Squat"}, {Exercise: ""},
		}}, http.StatusBadRequest},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			h, store, _ := newExerciseFixture(alice)
			rr := httptest.NewRecorder()
			h.ExerciseCallback(rr, callbackRequest(t, tt.secret, tt.body))
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Empty(t, store.rows)
		})
	}

	t.Run("too many rows", func(t *testing.T) {
		h, store, _ := newExerciseFixture(alice)
		rows := make([]dto.CallbackExerciseRecord, 101)
		for i := range rows {
			rows[i] = dto.CallbackExerciseRecord{Exercise: "Plank", Time: 30}
		}
		rr := httptest.NewRecorder()
		h.ExerciseCallback(rr, callbackRequest(t, testCallbackSecret, dto.ExerciseCallbackRequest{Username: "alice", Exercises: rows}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, store.rows)
	})

	t.Run("disabled without secret", func(t *testing.T) {
		h := NewExerciseHandler(&fakeExercises{}, newFakeUsers(alice), nil, "")
		rr := httptest.NewRecorder()
		h.ExerciseCallback(rr, callbackRequest(t, "anything", dto.ExerciseCallbackRequest{Username: "alice", Exercises: sample}))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _, _ := newExerciseFixture(alice)
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/exercises", strings.NewReader("{"))
		req.Header.Set("X-Webhook-Secret", testCallbackSecret)
		rr := httptest.NewRecorder()
		h.ExerciseCallback(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
