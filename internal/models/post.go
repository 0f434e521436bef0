package models

import "time"

// Post represents a ledger entry pointing at off-chain content. The IPFS hash
// is an opaque pointer; the ledger never resolves or interprets it. Posts are
// never deleted; removal is a read-time classification.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Author      string    `json:"author" gorm:"size:64;index"` // wallet address of the creator, immutable
	IPFSHash    string    `json:"ipfs_hash" gorm:"column:ipfs_hash;not null"`
	ReportCount int       `json:"report_count" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	IPFSHash string `json:"ipfs_hash" validate:"required,min=1"`
}
