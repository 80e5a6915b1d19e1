package usecase_test

import (
	"context"
	"errors"
	"sync"

	"creatorflow/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) Me(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) FetchCalendar(ctx context.Context) ([]model.ContentItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ContentItem)
	return items, args.Error(1)
}

func (m *MockContentService) GenerateCalendar(ctx context.Context) ([]model.ContentItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ContentItem)
	return items, args.Error(1)
}

func (m *MockContentService) SaveContent(ctx context.Context, id int64, patch model.ContentPatch) (model.ContentItem, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.ContentItem), args.Error(1)
}

func (m *MockContentService) ApplyAction(ctx context.Context, id int64, action model.ContentAction) (model.ContentItem, error) {
	args := m.Called(ctx, id, action)
	return args.Get(0).(model.ContentItem), args.Error(1)
}

func (m *MockContentService) ConfirmPlan(ctx context.Context) ([]model.ImageSuggestion, error) {
	args := m.Called(ctx)
	suggestions, _ := args.Get(0).([]model.ImageSuggestion)
	return suggestions, args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context) (*model.BrandProfile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*model.BrandProfile)
	return profile, args.Error(1)
}

func (m *MockProfileService) UpsertProfile(ctx context.Context, profile model.BrandProfile) (*model.BrandProfile, error) {
	args := m.Called(ctx, profile)
	saved, _ := args.Get(0).(*model.BrandProfile)
	return saved, args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RatePost(ctx context.Context, req model.RateRequest) (model.Rating, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Rating), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event model.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeSession is a minimal session gate.
type fakeSession struct {
	mu           sync.Mutex
	token        bool
	unauthorized int
}

func (f *fakeSession) HasToken() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSession) HandleUnauthorized(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unauthorized++
	f.token = false
}

// recordingActivity captures emitted events.
type recordingActivity struct {
	mu     sync.Mutex
	events []model.ActivityEvent
}

func (r *recordingActivity) Emit(_ context.Context, event model.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingActivity) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// failingStore wraps a store and fails writes on demand.
type failingStore struct {
	mu        sync.Mutex
	values    map[string]string
	failWrite bool
}

var errDiskFull = errors.New("disk full")

func newFailingStore() *failingStore {
	return &failingStore{values: make(map[string]string)}
}

func (s *failingStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *failingStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite {
		return errDiskFull
	}
	s.values[key] = value
	return nil
}

func (s *failingStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func strPtr(s string) *string { return &s }
