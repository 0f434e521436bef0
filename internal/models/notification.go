package models

import "time"

// Notification represents a user notification derived from ledger events
type Notification struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Type             string    `json:"type" gorm:"size:30;index"` // follow, like, tip, report
	ActorAddress     string    `json:"actor_address" gorm:"size:64;index"`
	RecipientAddress string    `json:"recipient_address" gorm:"size:64;index"`
	PostID           uint      `json:"post_id,omitempty"`
	Amount           int64     `json:"amount,omitempty"` // set for tip notifications
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
}
