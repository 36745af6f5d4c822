package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/metrics"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

// MaxMessageLength bounds a single chat message
const MaxMessageLength = 4000

// ChatService handles messaging between approved student/mentor pairs
type ChatService struct {
	messageRepo repositories.IMessageRepository
	requestRepo repositories.IMentorshipRequestRepository
	logger      zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(messageRepo repositories.IMessageRepository, requestRepo repositories.IMentorshipRequestRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// CanConverse reports whether an approved request links a and b in either direction
func (s *ChatService) CanConverse(ctx context.Context, a, b string) (bool, error) {
	if a == "" || b == "" || a == b {
		return false, nil
	}
	ok, err := s.requestRepo.ExistsApproved(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("error checking conversation access: %w", err)
	}
	return ok, nil
}

func (s *ChatService) requireConverse(ctx context.Context, a, b string) error {
	ok, err := s.CanConverse(ctx, a, b)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrNotAuthorized, "no approved mentorship links these users")
	}
	return nil
}

// Send stores a message from senderID to receiverID. The body is stored verbatim.
func (s *ChatService) Send(ctx context.Context, senderID, receiverID, body string) (*models.Message, error) {
	if err := s.requireConverse(ctx, senderID, receiverID); err != nil {
		s.logger.Warn().Str("senderID", senderID).Str("receiverID", receiverID).Msg("Message rejected for unapproved pair")
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("body", "message cannot be empty")
	}
	if len(body) > MaxMessageLength {
		return nil, apperrors.NewValidationError("body",
			fmt.Sprintf("message must be at most %d bytes", MaxMessageLength))
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("error storing message: %w", err)
	}

	metrics.MessagesSentTotal.Inc()
	return msg, nil
}

// History returns the conversation between a and b, oldest first
func (s *ChatService) History(ctx context.Context, a, b string) ([]*models.Message, error) {
	if err := s.requireConverse(ctx, a, b); err != nil {
		return nil, err
	}
	return s.messageRepo.ListBetween(ctx, a, b)
}

// Contacts lists the approved partners of userID, most recent request first
func (s *ChatService) Contacts(ctx context.Context, userID string) ([]dto.ContactResponse, error) {
	approved, err := s.requestRepo.ListApproved(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}

	seen := make(map[string]struct{}, len(approved))
	contacts := make([]dto.ContactResponse, 0, len(approved))
	for _, req := range approved {
		partnerID, partnerName := req.Partner(userID)
		if _, dup := seen[partnerID]; dup {
			continue
		}
		seen[partnerID] = struct{}{}
		contacts = append(contacts, dto.ContactResponse{
			UserID:    partnerID,
			Name:      partnerName,
			RequestID: req.ID,
		})
	}
	return contacts, nil
}
