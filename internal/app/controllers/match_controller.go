package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// MatchController ranks mentors and internships for the calling student
type MatchController struct {
	matchService *services.MatchService
}

// NewMatchController creates a new match controller
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{matchService: matchService}
}

// MatchMentors ranks every mentor against the student's skills
// @Summary Recommend mentors
// @Description Ranks all mentors by cosine similarity of skills, highest score first. Empty when the student has no skills.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorMatchResponse} "Mentors ranked"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Students only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matches/mentors [get]
func (c *MatchController) MatchMentors(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	matches, err := c.matchService.MatchMentors(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(matches, ""))
}

// MatchInternships ranks every internship against the student's skills
// @Summary Recommend internships
// @Description Ranks all internships by cosine similarity of skills, highest score first
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipMatchResponse} "Internships ranked"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Students only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matches/internships [get]
func (c *MatchController) MatchInternships(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	matches, err := c.matchService.MatchInternships(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(matches, ""))
}
