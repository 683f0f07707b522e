package models

import "time"

// ContactStatus is the admin handling state of a contact submission.
type ContactStatus string

// Contact submission states. Any transition is allowed.
const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// Valid reports whether s is a known state.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}

	return false
}

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID         uint64        `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"size:255;not null" json:"name"`
	Email      string        `gorm:"size:255;not null" json:"email"`
	Phone      *string       `gorm:"size:50" json:"phone"`
	Subject    string        `gorm:"size:255;not null" json:"subject"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	IPAddress  string        `gorm:"column:ip_address;size:45" json:"ip_address"`
	UserAgent  string        `gorm:"type:text" json:"user_agent"`
	Status     ContactStatus `gorm:"size:16;default:new;index" json:"status"`
	AdminNotes *string       `gorm:"type:text" json:"admin_notes"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
