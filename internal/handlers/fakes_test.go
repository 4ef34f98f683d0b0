package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
	"FITTRACK_BACK-END/internal/webhook"
)

var errStoreDown = errors.New("store down")

type fakeUsers struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*models.User
	failGet bool
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Username == u.Username || strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrConflict
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	copied := *u
	f.byID[u.ID] = &copied
	return nil
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errStoreDown
	}
	for _, u := range f.byID {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Username == username })
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id uuid.UUID, displayName, avatarURL *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	if displayName != nil {
		u.DisplayName = displayName
	}
	if avatarURL != nil {
		u.AvatarURL = avatarURL
	}
	return nil
}

func (f *fakeUsers) get(id uuid.UUID) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}

type fakeExercises struct {
	mu         sync.Mutex
	rows       []models.Exercise
	failWrite  bool
	lastFilter repository.ExerciseFilter
}

func (f *fakeExercises) Create(_ context.Context, e *models.Exercise) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return errStoreDown
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, *e)
	return nil
}

func (f *fakeExercises) CreateBatch(ctx context.Context, exercises []models.Exercise) error {
	if f.failWrite {
		return errStoreDown
	}
	for i := range exercises {
		if err := f.Create(ctx, &exercises[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeExercises) ListByUser(_ context.Context, userID uuid.UUID, filter repository.ExerciseFilter) ([]models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter

	out := make([]models.Exercise, 0)
	for _, e := range f.rows {
		if e.UserID != userID {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(e.Exercise), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []models.Exercise{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeExercises) Get(_ context.Context, userID, id uuid.UUID) (*models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.ID == id && e.UserID == userID {
			copied := e
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExercises) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.rows {
		if e.ID == id && e.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeFeedback struct {
	mu    sync.Mutex
	items []models.Feedback
}

func (f *fakeFeedback) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Feedback, 0)
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].UserID == userID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

func (f *fakeFeedback) Create(_ context.Context, fb *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fb.ID = uuid.New()
	fb.CreatedAt = time.Now().UTC()
	fb.UpdatedAt = fb.CreatedAt
	f.items = append(f.items, *fb)
	return nil
}

func (f *fakeFeedback) Update(_ context.Context, userID, id uuid.UUID, description string) (*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].Description = description
			f.items[i].UpdatedAt = time.Now().UTC()
			copied := f.items[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFeedback) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.Exercise
	err       error
}

func (p *fakePublisher) PublishExerciseRecorded(_ context.Context, exercises ...models.Exercise) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, exercises...)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeAssistant struct {
	voice []webhook.VoiceMessage
	chat  []string
	reply webhook.Reply
}

func (a *fakeAssistant) SendVoice(_ context.Context, msg webhook.VoiceMessage) webhook.Reply {
	a.voice = append(a.voice, msg)
	return a.reply
}

func (a *fakeAssistant) SendChat(_ context.Context, text string) webhook.Reply {
	a.chat = append(a.chat, text)
	return a.reply
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

// asUser returns ctx carrying an authenticated user, as AuthMiddleware would set it
func asUser(ctx context.Context, u *models.User) context.Context {
	return utils.WithUser(ctx, u.ID, u.Username)
}
