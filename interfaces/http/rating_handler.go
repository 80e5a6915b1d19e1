package http

import (
	"net/http"

	"creatorflow/domain/model"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IRatingHandler interface {
	RatePost(ctx *gin.Context)
}

type RatingHandler struct {
	ratingUsecase usecase.IRatingUsecase
}

func NewRatingHandler(ratingUsecase usecase.IRatingUsecase) IRatingHandler {
	return &RatingHandler{ratingUsecase: ratingUsecase}
}

func (h *RatingHandler) RatePost(ctx *gin.Context) {
	var req model.RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	res, err := h.ratingUsecase.Rate(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
