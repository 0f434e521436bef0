package repositories

import (
	"errors"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByAuthor(author string) ([]models.Post, error)
	GetPostsByAuthors(authors []string) ([]models.Post, error)
	GetPostCount() (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a new post. The id is assigned by the database sequence,
// so ids are strictly increasing from 1 across the ledger's lifetime.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by id. Returns (nil, nil) when no post with
// that id has been minted.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves every post in creation order
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthor retrieves the posts of a single author in creation order
func (r *PostgresPostRepository) GetPostsByAuthor(author string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("author = ?", author).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthors retrieves the posts of a set of authors in creation order
func (r *PostgresPostRepository) GetPostsByAuthors(authors []string) ([]models.Post, error) {
	var posts []models.Post
	if len(authors) == 0 {
		return posts, nil
	}
	if err := r.db.Where("author IN ?", authors).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostCount returns the number of minted posts
func (r *PostgresPostRepository) GetPostCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}
