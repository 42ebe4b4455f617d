package models

import "time"

// Project is a tender posting created by a tender-side user. Status and
// BidCount are mutated by downstream bidding activity.
type Project struct {
	BaseModel
	Title         string        `gorm:"not null"`
	Description   string        `gorm:"not null"`
	Budget        float64       `gorm:"not null"`
	Deadline      time.Time     `gorm:"not null"`
	Category      string        `gorm:"not null;index"`
	Specification string        `gorm:"type:text"`
	Status        ProjectStatus `gorm:"type:varchar(20);default:'open';index"`
	BidCount      int           `gorm:"default:0"`
	Progress      int           `gorm:"default:0"`
	OwnerID       string        `gorm:"not null;index"`
}
