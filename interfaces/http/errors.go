package http

import (
	"errors"
	"net/http"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, model.ErrUnknownPlatform),
		errors.Is(err, model.ErrUnknownAction),
		errors.Is(err, model.ErrUnknownPlan):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrItemBusy), errors.Is(err, model.ErrAlreadyConnecting):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.GetLogger().
			WithField("error", err).
			WithField("path", ctx.FullPath()).
			Error("Request failed")
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(ctx *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Warn(ErrorUnmarshal)
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
