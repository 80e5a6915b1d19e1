package http_test

import (
	"net/http"
	"testing"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	"creatorflow/infrastructure/persistence"
	httpHandler "creatorflow/interfaces/http"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	router.GET("/healthz", httpHandler.NewHealthHandler().Healthz)

	w := perform(router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestConnectionHandler(t *testing.T) {
	handler := httpHandler.NewConnectionHandler(usecase.NewConnectionRegistry(persistence.NewMemoryStore(), 0))
	router := gin.New()
	router.GET("/api/connections", handler.List)
	router.POST("/api/connections/:platform", handler.Connect)
	router.DELETE("/api/connections/:platform", handler.Disconnect)

	w := perform(router, http.MethodPost, "/api/connections/YouTube", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var connected struct {
		Connection model.ConnectionRecord `json:"connection"`
	}
	decode(t, w, &connected)
	assert.Equal(t, "@youtube_account", connected.Connection.DisplayName)

	var list struct {
		Connections []model.ConnectionRecord `json:"connections"`
		Count       int                      `json:"count"`
	}
	decode(t, perform(router, http.MethodGet, "/api/connections", nil), &list)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, model.PlatformYouTube, list.Connections[0].Platform)

	assert.Equal(t, http.StatusOK, perform(router, http.MethodDelete, "/api/connections/youtube", nil).Code)
	decode(t, perform(router, http.MethodGet, "/api/connections", nil), &list)
	assert.Zero(t, list.Count)

	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPost, "/api/connections/myspace", nil).Code)
}

func TestProfileHandler(t *testing.T) {
	session, _ := loggedInSession(t)
	service := new(MockProfileService)
	handler := httpHandler.NewProfileHandler(usecase.NewProfileUsecase(service, session))
	router := gin.New()
	router.GET("/api/profile", handler.GetProfile)
	router.POST("/api/profile", handler.UpsertProfile)

	service.On("GetProfile", mock.Anything).Return(nil, nil).Once()
	w := perform(router, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profile":null}`, w.Body.String())

	w = perform(router, http.MethodPost, "/api/profile", map[string]string{"business_name": "Chai Co"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing field: industry"}`, w.Body.String())
	service.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}

func TestRatingHandler_Validation(t *testing.T) {
	session, _ := loggedInSession(t)
	handler := httpHandler.NewRatingHandler(usecase.NewRatingUsecase(nil, session))
	router := gin.New()
	router.POST("/api/rate", handler.RatePost)

	w := perform(router, http.MethodPost, "/api/rate", map[string]string{"caption": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please add a caption, URL, or image to rate"}`, w.Body.String())
}

func TestBillingHandler(t *testing.T) {
	handler := httpHandler.NewBillingHandler(usecase.NewBillingUsecase(0, nil))
	router := gin.New()
	router.GET("/api/billing/plans", handler.Plans)
	router.POST("/api/billing/subscribe", handler.Subscribe)

	var plans struct {
		Plans []model.Plan `json:"plans"`
	}
	decode(t, perform(router, http.MethodGet, "/api/billing/plans", nil), &plans)
	assert.Len(t, plans.Plans, 2)

	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPost, "/api/billing/subscribe", map[string]string{}).Code)
	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPost, "/api/billing/subscribe", dto.SubscribeRequest{PlanID: "weekly"}).Code)

	w := perform(router, http.MethodPost, "/api/billing/subscribe", dto.SubscribeRequest{PlanID: "monthly", Method: model.PaymentBank})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Subscription model.Subscription `json:"subscription"`
	}
	decode(t, w, &res)
	assert.Equal(t, "active", res.Subscription.Status)
	assert.Equal(t, model.PaymentBank, res.Subscription.Method)
}

func TestClipHandler(t *testing.T) {
	handler := httpHandler.NewClipHandler(20)
	router := gin.New()
	router.GET("/api/clip/progress", handler.Progress)
	router.GET("/api/clip/caption", handler.Caption)

	var progress dto.ClipProgressView
	decode(t, perform(router, http.MethodGet, "/api/clip/progress?elapsed=5", nil), &progress)
	assert.InDelta(t, 25.0, progress.Progress, 1e-9)
	assert.False(t, progress.Ended)

	decode(t, perform(router, http.MethodGet, "/api/clip/progress?elapsed=26.4", nil), &progress)
	assert.Equal(t, 20.0, progress.Elapsed)
	assert.InDelta(t, 100.0, progress.Progress, 1e-9)
	assert.True(t, progress.Ended)

	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodGet, "/api/clip/progress?elapsed=soon", nil).Code)

	var rewound dto.ClipProgressView
	decode(t, perform(router, http.MethodGet, "/api/clip/progress?elapsed=-4", nil), &rewound)
	assert.Equal(t, 0.0, rewound.Elapsed)
	assert.Equal(t, 0.0, rewound.Progress)
	assert.False(t, rewound.Ended)

	var caption dto.CaptionSuggestion
	decode(t, perform(router, http.MethodGet, "/api/clip/caption?seed=7", nil), &caption)
	assert.Equal(t, usecase.PickCaption(7), caption.Caption)
	assert.Len(t, caption.Hashtags, 12)

	decode(t, perform(router, http.MethodGet, "/api/clip/caption?seed=1&set=food", nil), &caption)
	assert.Contains(t, caption.Hashtags, "#Foodie")
}
