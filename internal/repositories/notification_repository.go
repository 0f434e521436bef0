package repositories

import (
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipient(address string, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(address string) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(address string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new NotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipient(address string, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	r.db.Model(&models.Notification{}).Where("recipient_address = ?", address).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Where("recipient_address = ?", address).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(address string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_address = ? AND is_read = ?", address, false).
		Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(address string) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_address = ? AND is_read = ?", address, false).
		Update("is_read", true).Error
}
