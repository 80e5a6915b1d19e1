package http

import (
	"net/http"
	"strings"

	"creatorflow/domain/model"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IConnectionHandler interface {
	List(ctx *gin.Context)
	Connect(ctx *gin.Context)
	Disconnect(ctx *gin.Context)
}

type ConnectionHandler struct {
	registry *usecase.ConnectionRegistry
}

func NewConnectionHandler(registry *usecase.ConnectionRegistry) IConnectionHandler {
	return &ConnectionHandler{registry: registry}
}

func (h *ConnectionHandler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"connections": h.registry.Records(),
		"count":       h.registry.Count(),
	})
}

// Connect handles POST /api/connections/:platform
func (h *ConnectionHandler) Connect(ctx *gin.Context) {
	rec, err := h.registry.Connect(ctx.Request.Context(), platformParam(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"connection": rec})
}

// Disconnect handles DELETE /api/connections/:platform
func (h *ConnectionHandler) Disconnect(ctx *gin.Context) {
	platform := platformParam(ctx)
	if err := h.registry.Disconnect(ctx.Request.Context(), platform); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"disconnected": platform})
}

func platformParam(ctx *gin.Context) model.Platform {
	return model.Platform(strings.ToLower(strings.TrimSpace(ctx.Param("platform"))))
}
