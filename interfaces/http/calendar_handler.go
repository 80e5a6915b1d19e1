package http

import (
	"net/http"
	"strconv"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type ICalendarHandler interface {
	GetCalendar(ctx *gin.Context)
	Generate(ctx *gin.Context)
	ConfirmPlan(ctx *gin.Context)
	SaveContent(ctx *gin.Context)
	ApplyAction(ctx *gin.Context)
}

type CalendarHandler struct {
	calendar *usecase.CalendarModel
}

func NewCalendarHandler(calendar *usecase.CalendarModel) ICalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// GetCalendar handles GET /api/calendar?platform=
func (h *CalendarHandler) GetCalendar(ctx *gin.Context) {
	platform, err := model.ParsePlatform(ctx.Query("platform"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	items, err := h.calendar.Fetch(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CalendarView{
		Platform: platform,
		Items:    usecase.FilterByPlatform(items, platform),
		Counts:   usecase.PlatformCounts(items),
	})
}

func (h *CalendarHandler) Generate(ctx *gin.Context) {
	items, err := h.calendar.Generate(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"calendar": items})
}

func (h *CalendarHandler) ConfirmPlan(ctx *gin.Context) {
	suggestions, err := h.calendar.ConfirmPlan(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ConfirmPlanResponse{Confirmed: true, Suggestions: suggestions})
}

// SaveContent handles PUT /api/content/:id
func (h *CalendarHandler) SaveContent(ctx *gin.Context) {
	id, ok := contentID(ctx)
	if !ok {
		return
	}
	var patch model.ContentPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	if patch.Empty() {
		respondError(ctx, &model.ValidationError{Field: "content", Message: "Nothing to update"})
		return
	}
	item, err := h.calendar.Save(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"content": item})
}

// ApplyAction handles POST /api/content/:id/:action
func (h *CalendarHandler) ApplyAction(ctx *gin.Context) {
	id, ok := contentID(ctx)
	if !ok {
		return
	}
	item, err := h.calendar.ApplyAction(ctx.Request.Context(), id, model.ContentAction(ctx.Param("action")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"content": item})
}

func contentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return 0, false
	}
	return id, true
}
