package models

import "time"

// Account tracks the off-chain balance and lifetime tips received for a
// wallet address. Accounts are created lazily the first time an address is
// credited. Amounts are integral base units.
type Account struct {
	Address           string    `json:"address" gorm:"primaryKey;size:64"`
	Balance           int64     `json:"balance"`
	TotalTipsReceived int64     `json:"total_tips_received"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
