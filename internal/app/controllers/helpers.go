package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// identityOrAbort returns the caller set by JWTAuth, writing a 401 when it is absent
func identityOrAbort(ctx *gin.Context) (middleware.Identity, bool) {
	identity, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("User information not found")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return identity, ok
}
