package services

import (
	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ChatService interface {
	ListContacts(db *gorm.DB, role string) ([]dto.ChatContactResponse, error)
	SendMessage(db *gorm.DB, senderID string, req *dto.SendMessageRequest) error
	GetHistory(db *gorm.DB, userID, otherID string) ([]dto.MessageResponse, error)
}

type ChatServiceImpl struct {
	chatRepo repositories.ChatRepository
}

func NewChatService(chatRepo repositories.ChatRepository) ChatService {
	return &ChatServiceImpl{chatRepo: chatRepo}
}

// ListContacts returns the opposite side of the marketplace: hosts see
// performers, performers see hosts. Admins have no chat surface.
func (s *ChatServiceImpl) ListContacts(db *gorm.DB, role string) ([]dto.ChatContactResponse, error) {
	var (
		contacts []repositories.ChatContact
		err      error
	)
	switch models.UserRole(role) {
	case models.UserRoleHost:
		contacts, err = s.chatRepo.FindPerformerContacts(db)
	case models.UserRolePerformer:
		contacts, err = s.chatRepo.FindHostContacts(db)
	default:
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	formatted := make([]dto.ChatContactResponse, 0, len(contacts))
	for _, c := range contacts {
		formatted = append(formatted, dto.ChatContactResponse{
			ID:                c.ID,
			UserID:            c.UserID,
			Username:          c.Username,
			DisplayName:       c.DisplayName,
			Location:          c.Location,
			ProfilePictureURL: c.ProfilePictureURL,
		})
	}
	return formatted, nil
}

func (s *ChatServiceImpl) SendMessage(db *gorm.DB, senderID string, req *dto.SendMessageRequest) error {
	message := &models.Message{
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		MessageText: req.MessageText,
	}
	if err := s.chatRepo.CreateMessage(db, message); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ChatServiceImpl) GetHistory(db *gorm.DB, userID, otherID string) ([]dto.MessageResponse, error) {
	messages, err := s.chatRepo.FindConversation(db, userID, otherID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	formatted := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		formatted = append(formatted, dto.MessageResponse{
			ID:          m.ID,
			SenderID:    m.SenderID,
			ReceiverID:  m.ReceiverID,
			MessageText: m.MessageText,
			SentAt:      m.SentAt,
		})
	}
	return formatted, nil
}
