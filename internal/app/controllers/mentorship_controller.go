package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// MentorshipController handles the mentorship request workflow
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new mentorship controller
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// CreateRequest sends a mentorship request
// @Summary Request mentorship
// @Description Sends a Pending mentorship request from the student to a mentor. Only one Pending request per pair may exist.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Mentor to request"
// @Success 201 {object} dto.APIResponse{data=dto.MentorshipRequestResponse} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Students only"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "A Pending request to this mentor already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [post]
func (c *MentorshipController) CreateRequest(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.mentorshipService.Create(ctx.Request.Context(), identity.UserID, req.MentorID)
	if err != nil {
		c.logger.Warn().Err(err).Str("studentID", identity.UserID).Str("mentorID", req.MentorID).Msg("Mentorship request rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewMentorshipRequestResponse(created), "Mentorship request sent"))
}

// ListRequests lists the caller's requests
// @Summary List own mentorship requests
// @Description Students see the requests they sent, mentors the requests they received, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipRequestResponse} "Requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [get]
func (c *MentorshipController) ListRequests(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	requests, err := c.mentorshipService.ListFor(ctx.Request.Context(), identity.UserID, identity.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMentorshipRequestResponses(requests), ""))
}

// DecideRequest approves or rejects a pending request
// @Summary Decide a mentorship request
// @Description The addressed mentor approves or rejects a Pending request. Decided requests cannot change again.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.MentorshipRequestResponse} "Request decided"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the addressed mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id}/decision [post]
func (c *MentorshipController) DecideRequest(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	decided, err := c.mentorshipService.Decide(ctx.Request.Context(), ctx.Param("id"), identity.UserID, req.Decision)
	if err != nil {
		c.logger.Warn().Err(err).Str("requestID", ctx.Param("id")).Msg("Decision rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMentorshipRequestResponse(decided), "Request "+string(decided.Status)))
}
