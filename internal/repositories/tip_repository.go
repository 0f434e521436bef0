package repositories

import (
	"errors"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// Transfer failure causes surfaced to the ledger layer
var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAccountNotFound   = errors.New("account not found")
)

// TipRepository defines the interface for tip data operations
type TipRepository interface {
	Transfer(tip *models.Tip) error
	GetTipsAmount(postID uint) (int64, error)
	GetTipsByPostID(postID uint) ([]models.Tip, error)
	GetTotalTipsReceived(address string) (int64, error)
}

// PostgresTipRepository implements TipRepository for PostgreSQL
type PostgresTipRepository struct {
	db *gorm.DB
}

// NewPostgresTipRepository creates a new PostgresTipRepository
func NewPostgresTipRepository(db *gorm.DB) *PostgresTipRepository {
	return &PostgresTipRepository{db: db}
}

// Transfer settles a tip in a single transaction: debit the sender, credit
// the recipient, bump the per-post and per-recipient accumulators, and record
// the audit row. Any failure rolls the whole thing back, so the accumulators
// can never drift from settled balances. The debit uses a guarded UPDATE so
// concurrent tips cannot overdraw the sender.
func (r *PostgresTipRepository) Transfer(tip *models.Tip) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Account{}).
			Where("address = ? AND balance >= ?", tip.From, tip.Amount).
			Update("balance", gorm.Expr("balance - ?", tip.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Account{}).Where("address = ?", tip.From).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrAccountNotFound
			}
			return ErrInsufficientFunds
		}

		res = tx.Model(&models.Account{}).
			Where("address = ?", tip.Recipient).
			Updates(map[string]interface{}{
				"balance":             gorm.Expr("balance + ?", tip.Amount),
				"total_tips_received": gorm.Expr("total_tips_received + ?", tip.Amount),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Recipient accounts are created lazily on first credit
			account := &models.Account{
				Address:           tip.Recipient,
				Balance:           tip.Amount,
				TotalTipsReceived: tip.Amount,
			}
			if err := tx.Create(account).Error; err != nil {
				return err
			}
		}

		res = tx.Model(&models.PostTips{}).
			Where("post_id = ?", tip.PostID).
			Update("amount", gorm.Expr("amount + ?", tip.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.PostTips{PostID: tip.PostID, Amount: tip.Amount}).Error; err != nil {
				return err
			}
		}

		return tx.Create(tip).Error
	})
}

// GetTipsAmount returns the accumulated tips for a post, 0 for unknown ids
func (r *PostgresTipRepository) GetTipsAmount(postID uint) (int64, error) {
	var tips models.PostTips
	if err := r.db.First(&tips, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return tips.Amount, nil
}

// GetTipsByPostID retrieves the audit trail of tips for a post
func (r *PostgresTipRepository) GetTipsByPostID(postID uint) ([]models.Tip, error) {
	var tips []models.Tip
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// GetTotalTipsReceived returns the lifetime tips credited to an address,
// 0 for addresses that never received one
func (r *PostgresTipRepository) GetTotalTipsReceived(address string) (int64, error) {
	var account models.Account
	if err := r.db.First(&account, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.TotalTipsReceived, nil
}
