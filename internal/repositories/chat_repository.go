package repositories

import (
	"gigslk_backend/internal/models"

	"gorm.io/gorm"
)

// ChatContact is a messaging counterpart: the opposite-role profile joined
// with its user row.
type ChatContact struct {
	ID                string  // profile id
	UserID            string
	Username          string
	DisplayName       string // stage name or organization
	Location          string
	ProfilePictureURL *string
}

type ChatRepository interface {
	CreateMessage(db *gorm.DB, message *models.Message) error
	// FindConversation returns all messages between the unordered pair,
	// oldest first.
	FindConversation(db *gorm.DB, userID, otherID string) ([]models.Message, error)
	FindPerformerContacts(db *gorm.DB) ([]ChatContact, error)
	FindHostContacts(db *gorm.DB) ([]ChatContact, error)
}

type ChatRepositoryImpl struct{}

func NewChatRepository() ChatRepository {
	return &ChatRepositoryImpl{}
}

func (r *ChatRepositoryImpl) CreateMessage(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *ChatRepositoryImpl) FindConversation(db *gorm.DB, userID, otherID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("sent_at ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ChatRepositoryImpl) FindPerformerContacts(db *gorm.DB) ([]ChatContact, error) {
	var contacts []ChatContact
	err := db.Model(&models.PerformerProfile{}).
		Select("performer_profiles.id, users.id AS user_id, users.username, performer_profiles.stage_name AS display_name, performer_profiles.location, performer_profiles.profile_picture_url").
		Joins("JOIN users ON performer_profiles.user_id = users.id").
		Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ChatRepositoryImpl) FindHostContacts(db *gorm.DB) ([]ChatContact, error) {
	var contacts []ChatContact
	err := db.Model(&models.HostProfile{}).
		Select("host_profiles.id, users.id AS user_id, users.username, host_profiles.company_organization AS display_name, host_profiles.location, host_profiles.profile_picture_url").
		Joins("JOIN users ON host_profiles.user_id = users.id").
		Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
