package repositories

import (
	"errors"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// ErrLikeNotFound is returned when deleting a like that does not exist
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(postID uint, liker string) error
	HasUserLiked(postID uint, liker string) (bool, error)
	GetLikesCount(postID uint) (int64, error)
	GetLikersByPostID(postID uint) ([]string, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like. The composite unique index rejects duplicates
// that slip past the service-level check.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike removes a like, failing when none exists
func (r *PostgresLikeRepository) DeleteLike(postID uint, liker string) error {
	res := r.db.Where("post_id = ? AND liker = ?", postID, liker).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// HasUserLiked checks if an address has liked a post, false for unknown ids
func (r *PostgresLikeRepository) HasUserLiked(postID uint, liker string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND liker = ?", postID, liker).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCount returns the number of likes for a post, 0 for unknown ids
func (r *PostgresLikeRepository) GetLikesCount(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikersByPostID lists the addresses that liked a post
func (r *PostgresLikeRepository) GetLikersByPostID(postID uint) ([]string, error) {
	var likers []string
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Order("liker ASC").Pluck("liker", &likers).Error
	return likers, err
}
