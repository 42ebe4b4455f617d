package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tenderlink_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification type constants. Closed set of business events; the services
// never invent types outside this list.
const (
	NotificationTypeSignupComplete   = "SIGNUP_COMPLETE"
	NotificationTypeProjectCreated   = "PROJECT_CREATED"
	NotificationTypeNewTenderMatch   = "NEW_TENDER_MATCH"
	NotificationTypeNewBid           = "NEW_BID"
	NotificationTypeBidStatusUpdated = "BID_STATUS_UPDATED"
)

// ValidNotificationType reports membership in the closed type set.
func ValidNotificationType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeSignupComplete,
		NotificationTypeProjectCreated,
		NotificationTypeNewTenderMatch,
		NotificationTypeNewBid,
		NotificationTypeBidStatusUpdated:
		return true
	}
	return false
}

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	CreateBulkNotifications(notifications []*models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUnreadByUser(userID string) ([]models.Notification, error)

	// MarkAsRead is idempotent: marking an already-read notification succeeds
	// and leaves ReadAt at its first value.
	MarkAsRead(notificationID string) error

	GetUnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulkNotifications(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUnreadByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either already read (fine, idempotent) or missing.
		var count int64
		if err := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotificationNotFound
		}
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
