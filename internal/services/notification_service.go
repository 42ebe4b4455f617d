package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"tenderlink_backend/internal/apperrors"
	"tenderlink_backend/internal/email"
	"tenderlink_backend/internal/logger"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
	"tenderlink_backend/internal/services/dto"
)

type NotificationService interface {
	// CreateNotification persists one notification and, when the recipient has
	// an email address and has not disabled email notifications, sends the
	// templated email. The record is committed before the send; an email error
	// is returned alongside the created record and callers decide tolerance.
	CreateNotification(userID, notificationType, title, message string, metadata *dto.NotificationMetadata) (*dto.NotificationResponse, error)

	// CreateBulkNotifications batch-inserts one identical notification per
	// recipient, then emails the subset with email notifications enabled,
	// sequentially. Per-recipient send failures are logged and skipped.
	CreateBulkNotifications(userIDs []string, notificationType, title, message string, metadata *dto.NotificationMetadata) error

	GetUnreadNotifications(userID string) (*dto.NotificationListResponse, error)
	MarkNotificationAsRead(notificationID string) error

	// UpdateNotificationPreferences replaces the stored triple wholesale.
	UpdateNotificationPreferences(userID string, prefs models.NotificationPreferences) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) CreateNotification(userID, notificationType, title, message string, metadata *dto.NotificationMetadata) (*dto.NotificationResponse, error) {
	if !repositories.ValidNotificationType(notificationType) {
		return nil, fmt.Errorf("unknown notification type: %s", notificationType)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	metadataJSON, err := marshalMetadata(metadata)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:   userID,
		Type:     notificationType,
		Title:    title,
		Message:  message,
		Metadata: metadataJSON,
		IsRead:   false,
	}

	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		return nil, err
	}

	response := buildNotificationResponse(notification)

	if user.Email != "" && user.NotificationPrefs.Email {
		if err := s.sendNotificationEmail(user.Email, title, message); err != nil {
			// Record is already persisted; the caller decides whether the
			// send failure fails the overall operation.
			return response, err
		}
	}

	return response, nil
}

func (s *notificationService) CreateBulkNotifications(userIDs []string, notificationType, title, message string, metadata *dto.NotificationMetadata) error {
	if !repositories.ValidNotificationType(notificationType) {
		return fmt.Errorf("unknown notification type: %s", notificationType)
	}
	if len(userIDs) == 0 {
		return nil
	}

	metadataJSON, err := marshalMetadata(metadata)
	if err != nil {
		return err
	}

	notifications := make([]*models.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, &models.Notification{
			UserID:   userID,
			Type:     notificationType,
			Title:    title,
			Message:  message,
			Metadata: metadataJSON,
			IsRead:   false,
		})
	}

	if err := s.notificationRepo.CreateBulkNotifications(notifications); err != nil {
		return err
	}

	recipients, err := s.userRepo.FindEmailRecipients(userIDs)
	if err != nil {
		logger.WithError(err).Warn("failed to resolve email recipients for bulk notification", "type", notificationType)
		return nil
	}

	// Sequential by design: one inbound request, no fan-out workers.
	for _, recipient := range recipients {
		if err := s.sendNotificationEmail(recipient.Email, title, message); err != nil {
			logger.WithError(err).Warn("failed to send notification email",
				"user_id", recipient.ID,
				"type", notificationType,
			)
		}
	}

	return nil
}

func (s *notificationService) GetUnreadNotifications(userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindUnreadByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   int64(len(responses)),
	}, nil
}

func (s *notificationService) MarkNotificationAsRead(notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) UpdateNotificationPreferences(userID string, prefs models.NotificationPreferences) error {
	if err := s.userRepo.UpdateNotificationPreferences(userID, prefs); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

// ---------------- Helpers ----------------

func (s *notificationService) sendNotificationEmail(to, title, message string) error {
	return s.emailProvider.SendWithTemplate(email.TemplateNotification, email.TemplateData{
		"Title":   title,
		"Message": message,
	}, &email.Email{
		To:      []string{to},
		Subject: title,
	})
}

func marshalMetadata(metadata *dto.NotificationMetadata) (datatypes.JSON, error) {
	if metadata == nil {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification metadata: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.IsRead,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}

	if len(notification.Metadata) > 0 {
		var metadata map[string]interface{}
		if err := json.Unmarshal(notification.Metadata, &metadata); err == nil {
			response.Metadata = metadata
		}
	}

	return response
}
