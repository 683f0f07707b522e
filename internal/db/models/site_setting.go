// Package models contains database model definitions.
package models

import "time"

// SiteSetting is a scalar site setting such as the phone number or store hours.
type SiteSetting struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:191;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:32;default:text" json:"type"`
	Group     string    `gorm:"size:64;default:general;index" json:"group"`
	Label     string    `gorm:"size:255" json:"label"`
	Order     int       `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
