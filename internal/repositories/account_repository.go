package repositories

import (
	"errors"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	GetAccount(address string) (*models.Account, error)
	GetBalance(address string) (int64, error)
	Credit(address string, amount int64) error
}

// PostgresAccountRepository implements AccountRepository for PostgreSQL
type PostgresAccountRepository struct {
	db *gorm.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository
func NewPostgresAccountRepository(db *gorm.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// GetAccount retrieves an account, (nil, nil) when the address is unknown
func (r *PostgresAccountRepository) GetAccount(address string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GetBalance returns the balance for an address, 0 for unknown addresses
func (r *PostgresAccountRepository) GetBalance(address string) (int64, error) {
	account, err := r.GetAccount(address)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// Credit adds funds to an address, creating the account on first use
func (r *PostgresAccountRepository) Credit(address string, amount int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Account{}).
			Where("address = ?", address).
			Update("balance", gorm.Expr("balance + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Create(&models.Account{Address: address, Balance: amount}).Error
		}
		return nil
	})
}
