package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
	"github.com/yigit/mentorbridge/internal/pkg/helpers"
)

// AdminController serves the admin dashboard views
type AdminController struct {
	userService *services.UserService
}

// NewAdminController creates a new admin controller
func NewAdminController(userService *services.UserService) *AdminController {
	return &AdminController{userService: userService}
}

// GetStats returns user counts by role
// @Summary Get user statistics
// @Description Returns the total number of users and the count per role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserStatsResponse} "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.userService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Statistics retrieved successfully"))
}

// ListUsers returns a page of users
// @Summary List users
// @Description Lists users ordered by registration time, optionally filtered by role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter" Enums(Student, Mentor, Admin)
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	var query dto.UserListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	users, err := c.userService.ListUsers(ctx.Request.Context(), models.RoleType(query.Role), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users, "Users retrieved successfully"))
}
