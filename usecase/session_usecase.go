package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"creatorflow/domain/model"
	"creatorflow/domain/repository"
	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/utils"

	"golang.org/x/oauth2"
)

// SessionTokenKey is the storage key holding the bearer token.
const SessionTokenKey = "cf_token"

// ISessionGate is what stateful components need from the session: whether a
// token exists and a way to drop it when the backend rejects it.
type ISessionGate interface {
	HasToken() bool
	HandleUnauthorized(ctx context.Context)
}

// SessionStore owns the authenticated user and the persisted token. It is
// also the oauth2.TokenSource for backend calls.
type SessionStore struct {
	mu       sync.RWMutex
	store    repository.IKeyValueStore
	identity repository.IIdentity
	activity IActivity
	now      func() time.Time

	token   string
	user    *model.User
	loading int
}

func NewSessionStore(store repository.IKeyValueStore) *SessionStore {
	return &SessionStore{store: store, activity: noActivity{}, now: time.Now}
}

// WithIdentity attaches the identity endpoint. The backend client itself
// depends on the session for its token, so it is wired after construction.
func (s *SessionStore) WithIdentity(identity repository.IIdentity) *SessionStore {
	s.identity = identity
	return s
}

func (s *SessionStore) WithActivity(activity IActivity) *SessionStore {
	if activity != nil {
		s.activity = activity
	}
	return s
}

// Init restores the token from storage and resolves the user behind it.
func (s *SessionStore) Init(ctx context.Context) *model.User {
	token, ok, err := s.store.Get(ctx, SessionTokenKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to read stored session token")
	}
	s.mu.Lock()
	if ok {
		s.token = token
	}
	s.mu.Unlock()
	return s.FetchUser(ctx)
}

// Login persists the token and fetches the user exactly once. It reports
// ErrUnauthorized when the backend does not accept the token.
func (s *SessionStore) Login(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &model.ValidationError{Field: "token"}
	}
	if err := s.store.Set(ctx, SessionTokenKey, token); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to persist session token")
		return nil, err
	}
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	user := s.FetchUser(ctx)
	if user == nil {
		return nil, model.ErrUnauthorized
	}
	s.activity.Emit(ctx, model.ActivityEvent{Type: model.EventLogin})
	return user, nil
}

// FetchUser resolves the current token into a user. Any failure clears the
// session; the failure itself is only logged.
func (s *SessionStore) FetchUser(ctx context.Context) *model.User {
	s.mu.Lock()
	token := s.token
	if token == "" || s.identity == nil {
		s.user = nil
		s.mu.Unlock()
		return nil
	}
	s.loading++
	s.mu.Unlock()

	user, err := s.identity.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	// A newer login or logout replaced the token while we were waiting.
	if s.token != token {
		return s.userCopy()
	}
	if ctx.Err() != nil {
		return s.userCopy()
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Info("Session token rejected, clearing session")
		s.clearLocked(ctx)
		return nil
	}
	s.user = &user
	return s.userCopy()
}

// Logout clears the token and the user.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.clearLocked(ctx)
	s.mu.Unlock()
	s.activity.Emit(ctx, model.ActivityEvent{Type: model.EventLogout})
	return nil
}

// HandleUnauthorized drops the session after the backend rejected a call.
func (s *SessionStore) HandleUnauthorized(ctx context.Context) {
	s.mu.Lock()
	had := s.token != ""
	s.clearLocked(ctx)
	s.mu.Unlock()
	if had {
		s.activity.Emit(ctx, model.ActivityEvent{Type: model.EventSessionExpired})
	}
}

// Revalidate drops a token whose exp claim has passed without asking the
// backend, and otherwise re-fetches the user.
func (s *SessionStore) Revalidate(ctx context.Context) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return
	}
	if utils.TokenExpired(token, s.now()) {
		logger.GetLogger().Info("Session token expired, clearing session")
		s.HandleUnauthorized(ctx)
		return
	}
	s.FetchUser(ctx)
}

func (s *SessionStore) clearLocked(ctx context.Context) {
	s.token = ""
	s.user = nil
	if err := s.store.Delete(ctx, SessionTokenKey); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to delete stored session token")
	}
}

func (s *SessionStore) userCopy() *model.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Current returns a copy of the authenticated user, or nil.
func (s *SessionStore) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userCopy()
}

func (s *SessionStore) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Token implements oauth2.TokenSource.
func (s *SessionStore) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, model.ErrNoSession
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}
