package http

import (
	"net/http"

	"creatorflow/domain/model"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IProfileHandler interface {
	GetProfile(ctx *gin.Context)
	UpsertProfile(ctx *gin.Context)
}

type ProfileHandler struct {
	profileUsecase usecase.IProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.IProfileUsecase) IProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile answers {"profile": null} when none was saved yet.
func (h *ProfileHandler) GetProfile(ctx *gin.Context) {
	profile, err := h.profileUsecase.Get(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) UpsertProfile(ctx *gin.Context) {
	var req model.BrandProfile
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	saved, err := h.profileUsecase.Upsert(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"profile": saved})
}
