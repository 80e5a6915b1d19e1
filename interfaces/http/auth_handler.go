package http

import (
	"net/http"

	"creatorflow/infrastructure/clients/creatorflow"
	"creatorflow/infrastructure/logger"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

const authFailed = "auth_failed"

type IAuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Me(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthHandler struct {
	session     *usecase.SessionStore
	loginURL    string
	frontendURL string
}

func NewAuthHandler(session *usecase.SessionStore, loginURL string, frontendURL string) IAuthHandler {
	return &AuthHandler{session: session, loginURL: loginURL, frontendURL: frontendURL}
}

// Login handles GET /auth/login by handing the browser to the backend's
// identity provider flow.
func (h *AuthHandler) Login(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, h.loginURL)
}

// Callback handles GET /auth/callback?token=
func (h *AuthHandler) Callback(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.Redirect(http.StatusFound, creatorflow.AuthFailedURL(h.frontendURL, authFailed))
		return
	}
	if _, err := h.session.Login(ctx.Request.Context(), token); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Login callback rejected")
		ctx.Redirect(http.StatusFound, creatorflow.AuthFailedURL(h.frontendURL, authFailed))
		return
	}
	ctx.Redirect(http.StatusFound, creatorflow.DashboardURL(h.frontendURL))
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user := h.session.Current()
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := h.session.Logout(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"logged_out": true})
}
