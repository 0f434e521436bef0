package models

import "time"

// Tip is the audit record for a single settled transfer. The running totals
// live in PostTips and Account; this row exists so individual transfers stay
// traceable by reference.
type Tip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TxRef     string    `json:"tx_ref" gorm:"size:36;uniqueIndex"`
	PostID    uint      `json:"post_id" gorm:"index"`
	From      string    `json:"from" gorm:"column:from_address;size:64;index"`
	Recipient string    `json:"recipient" gorm:"size:64;index"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// PostTips accumulates the total value tipped against a post id. As with
// likes, the post id is not validated against the posts table.
type PostTips struct {
	PostID uint  `json:"post_id" gorm:"primaryKey"`
	Amount int64 `json:"amount"`
}

// TipPostRequest defines the request body for tipping a post. The recipient
// is caller-supplied and is not checked against the post's author; that trust
// boundary belongs to the calling layer.
type TipPostRequest struct {
	Recipient string `json:"recipient" validate:"required,eth_addr"`
	Amount    int64  `json:"amount"`
}
