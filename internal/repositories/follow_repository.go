package repositories

import (
	"errors"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// ErrFollowNotFound is returned when deleting a follow edge that does not exist
var ErrFollowNotFound = errors.New("follow relationship not found")

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(follower, following string) error
	IsFollowing(follower, following string) (bool, error)
	GetFollowers(address string) ([]string, error)
	GetFollowing(address string) ([]string, error)
	GetFollowersCount(address string) (int64, error)
	GetFollowingCount(address string) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(follower, following string) error {
	res := r.db.Where("follower = ? AND following = ?", follower, following).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(follower, following string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower = ? AND following = ?", follower, following).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers lists addresses following the given address, ordered by
// address so the result is deterministic regardless of insertion order.
func (r *PostgresFollowRepository) GetFollowers(address string) ([]string, error) {
	var followers []string
	err := r.db.Model(&models.Follow{}).Where("following = ?", address).Order("follower ASC").Pluck("follower", &followers).Error
	return followers, err
}

// GetFollowing lists addresses the given address follows
func (r *PostgresFollowRepository) GetFollowing(address string) ([]string, error) {
	var following []string
	err := r.db.Model(&models.Follow{}).Where("follower = ?", address).Order("following ASC").Pluck("following", &following).Error
	return following, err
}

func (r *PostgresFollowRepository) GetFollowersCount(address string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following = ?", address).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(address string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower = ?", address).Count(&count).Error
	return count, err
}
