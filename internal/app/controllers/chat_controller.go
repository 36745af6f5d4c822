package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// ChatController handles messages between approved student/mentor pairs
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new chat controller
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// ListContacts lists the caller's approved chat partners
// @Summary List chat contacts
// @Description Lists every user the caller shares an Approved mentorship request with
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ContactResponse} "Contacts"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chats/contacts [get]
func (c *ChatController) ListContacts(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	contacts, err := c.chatService.Contacts(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts, ""))
}

// GetMessages returns the conversation with another user
// @Summary Get conversation
// @Description Returns all messages between the caller and the given user, oldest first
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Partner user ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse} "Messages"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "No approved mentorship with this user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chats/{userId}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	messages, err := c.chatService.History(ctx.Request.Context(), identity.UserID, ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMessageResponses(messages), ""))
}

// SendMessage sends a message to another user
// @Summary Send a message
// @Description Appends a message to the conversation. Requires an Approved mentorship between the two users.
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Receiver user ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Empty or oversized message"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "No approved mentorship with this user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chats/{userId}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	identity, ok := identityOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	msg, err := c.chatService.Send(ctx.Request.Context(), identity.UserID, ctx.Param("userId"), req.Body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewMessageResponse(msg), "Message sent"))
}
