package http

import (
	"net/http"

	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IDashboardHandler interface {
	Summary(ctx *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Summary(ctx *gin.Context) {
	summary, err := h.dashboardUsecase.Summary(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
