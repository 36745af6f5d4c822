package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// CareerController serves career goals, skill gaps and roadmaps
type CareerController struct {
	careerService *services.CareerService
}

// NewCareerController creates a new career controller
func NewCareerController(careerService *services.CareerService) *CareerController {
	return &CareerController{careerService: careerService}
}

// ListGoals lists the configured career goals
// @Summary List career goals
// @Description Lists every configured career goal with its required skills
// @Tags careers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CareerProfileResponse} "Career goals"
// @Router /careers [get]
func (c *CareerController) ListGoals(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.careerService.Goals(), ""))
}

// GetGap evaluates the student's skill gap
// @Summary Get skill gap
// @Description Compares the student's skills with the skills required by their career goal
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SkillGapResponse} "Skill gap"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Students only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 422 {object} dto.ErrorResponse "Career goal not configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /careers/gap [get]
func (c *CareerController) GetGap(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	gap, err := c.careerService.Gap(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSkillGapResponse(gap), ""))
}

// GetRoadmap returns the learning roadmap of the student's career goal
// @Summary Get learning roadmap
// @Description Returns the required skills of the student's career goal as numbered steps
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RoadmapResponse} "Roadmap"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Students only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 422 {object} dto.ErrorResponse "Career goal not configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /careers/roadmap [get]
func (c *CareerController) GetRoadmap(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	roadmap, err := c.careerService.Roadmap(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roadmap, ""))
}
