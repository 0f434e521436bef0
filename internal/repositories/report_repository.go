package repositories

import (
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	CreateReport(report *models.Report) error
	HasReported(postID uint, reporter string) (bool, error)
	GetReportCount(postID uint) (int64, error)
	GetReportsByPostID(postID uint) ([]models.Report, error)
}

// PostgresReportRepository implements ReportRepository for PostgreSQL
type PostgresReportRepository struct {
	db *gorm.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// CreateReport inserts the report and bumps the post's report counter in one
// transaction. The counter on the post row is a denormalized copy of the
// reports table cardinality; the two must never diverge.
func (r *PostgresReportRepository) CreateReport(report *models.Report) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", report.PostID).
			Update("report_count", gorm.Expr("report_count + 1")).Error
	})
}

// HasReported checks whether an address has already reported a post. Unknown
// post ids return false rather than an error.
func (r *PostgresReportRepository) HasReported(postID uint, reporter string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Report{}).Where("post_id = ? AND reporter = ?", postID, reporter).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetReportCount returns the number of reports for a post, 0 for unknown ids
func (r *PostgresReportRepository) GetReportCount(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Report{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetReportsByPostID retrieves the audit trail of reports for a post
func (r *PostgresReportRepository) GetReportsByPostID(postID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
