package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/persistence"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// loggedInSession returns a session that already holds a valid token.
func loggedInSession(t *testing.T) (*usecase.SessionStore, *MockIdentity) {
	t.Helper()
	identity := new(MockIdentity)
	identity.On("Me", mock.Anything).Return(model.User{ID: 7, Name: "Asha Rao", Email: "asha@example.com"}, nil)
	session := usecase.NewSessionStore(persistence.NewMemoryStore()).WithIdentity(identity)
	_, err := session.Login(context.Background(), "token")
	require.NoError(t, err)
	return session, identity
}

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			buf.WriteString(v)
		default:
			_ = json.NewEncoder(&buf).Encode(v)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

