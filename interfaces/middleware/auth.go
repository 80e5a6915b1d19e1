package middleware

import (
	"net/http"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"

	"github.com/gin-gonic/gin"
)

// SessionReader exposes the authenticated user, if any.
type SessionReader interface {
	Current() *model.User
}

// RequireSession rejects requests while nobody is logged in and stores the
// user id under "user_id" otherwise.
func RequireSession(session SessionReader) gin.HandlerFunc {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Unauthorized"

	return func(ctx *gin.Context) {
		user := session.Current()
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		ctx.Set("user_id", user.ID)
		ctx.Next()
	}
}
