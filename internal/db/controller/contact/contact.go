// Package contact stores contact form submissions and their admin status.
package contact

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrSubmissionNotFound is returned when a submission does not exist.
	ErrSubmissionNotFound = errors.New("contact submission not found")
	// ErrInvalidStatus is returned for a status outside new, read, replied, archived.
	ErrInvalidStatus = errors.New("invalid contact status")
)

// Create stores a new submission with status new.
func Create(db *gorm.DB, s *models.ContactSubmission) error {
	if db == nil {
		return ErrDBNil
	}

	s.ID = 0
	s.Status = models.ContactStatusNew
	s.AdminNotes = nil

	return pkgerrors.Wrap(db.Create(s).Error, "create contact submission")
}

// Get returns a submission by id.
func Get(db *gorm.DB, id uint64) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.ContactSubmission
	err := db.First(&s, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrSubmissionNotFound
	case err != nil:
		return nil, pkgerrors.Wrapf(err, "load contact submission %d", id)
	}

	return &s, nil
}

// List returns the submissions newest first, filtered by status when given.
func List(db *gorm.DB, status ...models.ContactStatus) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.Order("created_at desc").Order("id desc")
	if len(status) > 0 {
		q = q.Where("status IN ?", status)
	}

	var out []models.ContactSubmission
	if err := q.Find(&out).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list contact submissions")
	}

	return out, nil
}

// ListUnread returns the submissions still in status new.
func ListUnread(db *gorm.DB) ([]models.ContactSubmission, error) {
	return List(db, models.ContactStatusNew)
}

// CountNew returns the number of unread submissions.
func CountNew(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	err := db.Model(&models.ContactSubmission{}).Where("status = ?", models.ContactStatusNew).Count(&n).Error

	return n, pkgerrors.Wrap(err, "count new contact submissions")
}

// SetStatus moves a submission to status. Any transition is allowed.
func SetStatus(db *gorm.DB, id uint64, status models.ContactStatus) error {
	if db == nil {
		return ErrDBNil
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return update(db, id, "status", status)
}

// MarkRead sets status read.
func MarkRead(db *gorm.DB, id uint64) error {
	return SetStatus(db, id, models.ContactStatusRead)
}

// MarkReplied sets status replied.
func MarkReplied(db *gorm.DB, id uint64) error {
	return SetStatus(db, id, models.ContactStatusReplied)
}

// Archive sets status archived.
func Archive(db *gorm.DB, id uint64) error {
	return SetStatus(db, id, models.ContactStatusArchived)
}

// UpdateNotes replaces the admin notes, empty clears them.
func UpdateNotes(db *gorm.DB, id uint64, notes string) error {
	if db == nil {
		return ErrDBNil
	}

	return update(db, id, "admin_notes", models.Str(notes))
}

// Delete removes a submission.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return pkgerrors.Wrapf(result.Error, "delete contact submission %d", id)
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func update(db *gorm.DB, id uint64, column string, value any) error {
	result := db.Model(&models.ContactSubmission{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return pkgerrors.Wrapf(result.Error, "update contact submission %d", id)
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}
