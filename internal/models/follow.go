package models

import "time"

// Follow represents a directed follow edge between two wallet addresses
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Follower  string    `json:"follower" gorm:"size:64;index;uniqueIndex:idx_follower_following"`
	Following string    `json:"following" gorm:"size:64;index;uniqueIndex:idx_follower_following"`
	CreatedAt time.Time `json:"created_at"`
}
