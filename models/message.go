package models

import "time"

// Message rows are append-only; only IsRead ever changes, flipped when the
// receiver opens the thread.
type Message struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	SenderID   int       `gorm:"not null;index" json:"sender_id"`
	ReceiverID int       `gorm:"not null;index" json:"receiver_id"`
	Body       string    `gorm:"not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
}
