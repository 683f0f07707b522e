package models

import "time"

// VisitDateLayout is the storage format of Visitor.VisitDate.
const VisitDateLayout = "2006-01-02"

// Visitor is one recorded page view. Rows are insert-only.
type Visitor struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	IPAddress   string    `gorm:"column:ip_address;size:45;index" json:"ip_address"`
	UserAgent   string    `gorm:"size:255" json:"user_agent"`
	PageVisited string    `gorm:"size:255" json:"page_visited"`
	Referrer    *string   `gorm:"size:255" json:"referrer"`
	Country     *string   `gorm:"size:64" json:"country"`
	City        *string   `gorm:"size:128" json:"city"`
	DeviceType  string    `gorm:"size:32" json:"device_type"`
	Browser     string    `gorm:"size:32" json:"browser"`
	OS          string    `gorm:"column:os;size:32" json:"os"`
	VisitDate   string    `gorm:"size:10;index" json:"visit_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
