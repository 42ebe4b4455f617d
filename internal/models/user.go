package models

import "time"

// NotificationPreferences is stored embedded on the user row. Updates replace
// the whole triple, never a partial merge.
type NotificationPreferences struct {
	Email bool `gorm:"default:true" json:"email"`
	InApp bool `gorm:"default:true" json:"inApp"`
	Push  bool `gorm:"default:false" json:"push"`
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, InApp: true, Push: false}
}

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	CompanyName  string   `gorm:"not null"`
	UserType     UserType `gorm:"type:varchar(20);not null"`
	// BidderType is set iff UserType is bidder.
	BidderType              BidderType `gorm:"type:varchar(20)"`
	IsVerified              bool       `gorm:"default:false"`
	VerificationToken       string     `gorm:"index"`
	VerificationTokenExpiry *time.Time
	NotificationPrefs       NotificationPreferences `gorm:"embedded;embeddedPrefix:notify_"`

	Projects      []Project      `gorm:"foreignKey:OwnerID"`
	Notifications []Notification `gorm:"foreignKey:UserID"`
}
