package http_test

import (
	"context"
	"net/http"
	"testing"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	httpHandler "creatorflow/interfaces/http"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func calendarRouter(t *testing.T) (*gin.Engine, *MockContentService, *usecase.SessionStore) {
	t.Helper()
	session, _ := loggedInSession(t)
	service := new(MockContentService)
	handler := httpHandler.NewCalendarHandler(usecase.NewCalendarModel(service, session))

	router := gin.New()
	router.GET("/api/calendar", handler.GetCalendar)
	router.POST("/api/calendar/generate", handler.Generate)
	router.POST("/api/calendar/confirm", handler.ConfirmPlan)
	router.PUT("/api/content/:id", handler.SaveContent)
	router.POST("/api/content/:id/:action", handler.ApplyAction)
	return router, service, session
}

func calendarItems() []model.ContentItem {
	return []model.ContentItem{
		{ID: 2, Day: 2, Platform: model.PlatformYouTube, Caption: "tour"},
		{ID: 1, Day: 1, Platform: model.PlatformInstagram, Caption: "hello"},
	}
}

func TestCalendarHandler_FilterAndCounts(t *testing.T) {
	router, service, _ := calendarRouter(t)
	service.On("FetchCalendar", mock.Anything).Return(calendarItems(), nil)

	w := perform(router, http.MethodGet, "/api/calendar?platform=youtube", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var view dto.CalendarView
	decode(t, w, &view)
	assert.Equal(t, model.PlatformYouTube, view.Platform)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ID)
	assert.Equal(t, 2, view.Counts["all"])
	assert.Equal(t, 0, view.Counts["facebook"])
}

func TestCalendarHandler_UnknownPlatform(t *testing.T) {
	router, service, _ := calendarRouter(t)

	w := perform(router, http.MethodGet, "/api/calendar?platform=tiktok", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"unknown platform"}`, w.Body.String())
	service.AssertNotCalled(t, "FetchCalendar", mock.Anything)
}

func TestCalendarHandler_NoSession(t *testing.T) {
	router, _, session := calendarRouter(t)
	require.NoError(t, session.Logout(context.Background()))

	w := perform(router, http.MethodPost, "/api/calendar/generate", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCalendarHandler_GenerateFailureIsBadGateway(t *testing.T) {
	router, service, _ := calendarRouter(t)
	service.On("GenerateCalendar", mock.Anything).
		Return(nil, &model.ServiceError{Status: 400, Message: "Complete your brand profile first"})

	w := perform(router, http.MethodPost, "/api/calendar/generate", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"failed to generate calendar: Complete your brand profile first"}`, w.Body.String())
}

func TestCalendarHandler_ConfirmPlan(t *testing.T) {
	router, service, _ := calendarRouter(t)
	service.On("ConfirmPlan", mock.Anything).
		Return([]model.ImageSuggestion{{Day: 1, Platform: model.PlatformInstagram, ImageURL: "https://img/1.png"}}, nil)

	w := perform(router, http.MethodPost, "/api/calendar/confirm", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var res dto.ConfirmPlanResponse
	decode(t, w, &res)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "https://img/1.png", res.Suggestions[0].Source())
}

func TestCalendarHandler_SaveValidation(t *testing.T) {
	router, service, _ := calendarRouter(t)

	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPut, "/api/content/abc", map[string]string{"caption": "x"}).Code)
	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPut, "/api/content/1", "{bad json").Code)

	w := perform(router, http.MethodPut, "/api/content/1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Nothing to update"}`, w.Body.String())

	service.AssertNotCalled(t, "SaveContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCalendarHandler_SaveUnknownItem(t *testing.T) {
	router, service, _ := calendarRouter(t)
	service.On("FetchCalendar", mock.Anything).Return(calendarItems(), nil)
	require.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/api/calendar", nil).Code)

	w := perform(router, http.MethodPut, "/api/content/99", map[string]string{"caption": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalendarHandler_SaveAndAction(t *testing.T) {
	router, service, _ := calendarRouter(t)
	service.On("FetchCalendar", mock.Anything).Return(calendarItems(), nil)
	require.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/api/calendar", nil).Code)

	saved := model.ContentItem{ID: 1, Day: 1, Platform: model.PlatformInstagram, Caption: "edited"}
	service.On("SaveContent", mock.Anything, int64(1), mock.Anything).Return(saved, nil).Once()
	w := perform(router, http.MethodPut, "/api/content/1", map[string]string{"caption": "edited"})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Content model.ContentItem `json:"content"`
	}
	decode(t, w, &res)
	assert.Equal(t, "edited", res.Content.Caption)

	improved := model.ContentItem{ID: 2, Day: 2, Platform: model.PlatformYouTube, Caption: "better tour"}
	service.On("ApplyAction", mock.Anything, int64(2), model.ActionImprove).Return(improved, nil).Once()
	w = perform(router, http.MethodPost, "/api/content/2/improve", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodPost, "/api/content/2/shorten", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
