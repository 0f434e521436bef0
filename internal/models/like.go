package models

import "time"

// Like represents a like on a post. The post id is deliberately not a foreign
// key into the posts table: the post and social ledgers are decoupled, so
// likes against unknown ids are representable.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_liker"`
	Liker     string    `json:"liker" gorm:"size:64;index;uniqueIndex:idx_post_liker"`
	CreatedAt time.Time `json:"created_at"`
}
