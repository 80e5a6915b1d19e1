package http

import (
	"net/http"

	"creatorflow/domain/dto"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IBillingHandler interface {
	Plans(ctx *gin.Context)
	Subscribe(ctx *gin.Context)
}

type BillingHandler struct {
	billingUsecase usecase.IBillingUsecase
}

func NewBillingHandler(billingUsecase usecase.IBillingUsecase) IBillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase}
}

func (h *BillingHandler) Plans(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"plans": h.billingUsecase.Plans()})
}

func (h *BillingHandler) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	sub, err := h.billingUsecase.Subscribe(ctx.Request.Context(), req.PlanID, req.Method)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"subscription": sub})
}
