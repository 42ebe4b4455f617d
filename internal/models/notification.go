package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "SIGNUP_COMPLETE", "PROJECT_CREATED", "NEW_TENDER_MATCH"
	Title   string `gorm:"not null"`
	Message string
	// Metadata holds weak references back to the triggering entity,
	// e.g. {"projectId": "...", "bidId": "..."}.
	Metadata datatypes.JSON `gorm:"type:jsonb"`
	IsRead   bool           `gorm:"default:false"`
	ReadAt   *time.Time
}
