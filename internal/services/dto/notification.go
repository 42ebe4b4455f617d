package dto

import (
	"time"

	"tenderlink_backend/internal/models"
)

// NotificationMetadata links a notification back to the triggering entity.
// All fields are weak references, not enforced foreign keys.
type NotificationMetadata struct {
	ProjectID string `json:"projectId,omitempty"`
	BidID     string `json:"bidId,omitempty"`
	TenderID  string `json:"tenderId,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Read      bool                   `json:"read"`
	ReadAt    *time.Time             `json:"readAt,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}

// UpdateNotificationPreferencesRequest replaces the stored preference triple
// wholesale. All three flags are required so a caller cannot silently drop one
// by omission.
type UpdateNotificationPreferencesRequest struct {
	Email *bool `json:"email" binding:"required"`
	InApp *bool `json:"inApp" binding:"required"`
	Push  *bool `json:"push" binding:"required"`
}

func (r *UpdateNotificationPreferencesRequest) ToModel() models.NotificationPreferences {
	return models.NotificationPreferences{
		Email: *r.Email,
		InApp: *r.InApp,
		Push:  *r.Push,
	}
}

type NotificationPreferencesResponse struct {
	Message     string                         `json:"message"`
	Preferences models.NotificationPreferences `json:"preferences"`
}
