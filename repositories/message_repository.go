package repositories

import (
	"fmt"
	"time"

	"collab-finder/config"
	"collab-finder/models"
)

const threadLimit = 500

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

type conversationRow struct {
	OtherID   int
	LastMsgID int
	Unread    int
}

// Conversation is one inbox entry: the counterpart plus the latest message
// between the pair and how many of their messages are still unread.
type Conversation struct {
	OtherID   int
	OtherName string
	LastBody  string
	LastTime  time.Time
	Unread    int
}

func (r *MessageRepository) Create(senderID, receiverID int, body string) error {
	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	return config.DB.Create(message).Error
}

// Conversations collapses the message log into one row per counterpart,
// newest conversation first. The highest message id per pair stands in for
// recency since ids are append-ordered.
func (r *MessageRepository) Conversations(userID int) ([]Conversation, error) {
	var rows []conversationRow
	err := config.DB.Raw(`
		SELECT
		  CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS other_id,
		  MAX(m.id) AS last_msg_id,
		  SUM(CASE WHEN m.receiver_id = ? AND m.is_read = 0 THEN 1 ELSE 0 END) AS unread
		FROM messages m
		WHERE m.sender_id = ? OR m.receiver_id = ?
		GROUP BY other_id
		ORDER BY last_msg_id DESC`,
		userID, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	conversations := make([]Conversation, 0, len(rows))
	for _, row := range rows {
		var last models.Message
		if err := config.DB.First(&last, row.LastMsgID).Error; err != nil {
			return nil, err
		}

		name := fmt.Sprintf("User %d", row.OtherID)
		var profile models.Profile
		if err := config.DB.Where("user_id = ?", row.OtherID).First(&profile).Error; err == nil {
			name = profile.DisplayName()
		}

		conversations = append(conversations, Conversation{
			OtherID:   row.OtherID,
			OtherName: name,
			LastBody:  last.Body,
			LastTime:  last.CreatedAt,
			Unread:    row.Unread,
		})
	}
	return conversations, nil
}

// Thread returns up to threadLimit messages between the two users in
// chronological order.
func (r *MessageRepository) Thread(userID, otherID int) ([]models.Message, error) {
	var messages []models.Message
	err := config.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("id ASC").
		Limit(threadLimit).
		Find(&messages).Error
	return messages, err
}

// MarkRead flips every unread message from other to user. Running it again
// is a no-op.
func (r *MessageRepository) MarkRead(userID, otherID int) error {
	return config.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, otherID, false).
		Update("is_read", true).Error
}
