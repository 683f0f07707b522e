// Package visitor stores page views and computes the dashboard aggregates.
package visitor

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/db/models"
)

const (
	dateQueryPattern = "visit_date = ?"
	browserTopN      = 5
	seriesLabel      = "Jan 2"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// DayCount is the number of visits on one date.
type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label,omitempty"`
	Count int64  `json:"count"`
}

// Count is the number of visits for one label: a page, a device or a browser.
type Count struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Summary is the stats overview of the dashboard.
type Summary struct {
	Today       int64 `json:"today"`
	TodayUnique int64 `json:"today_unique"`
	Week        int64 `json:"week"`
	Month       int64 `json:"month"`
	Total       int64 `json:"total"`
	Unique      int64 `json:"unique"`
}

// Repository reads and writes visitor rows.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a visitor repository using the local clock.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// WithClock replaces the clock the date windows are computed from.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Create inserts a visit.
func (r *Repository) Create(ctx context.Context, v *models.Visitor) error {
	if r.db == nil {
		return ErrDBNil
	}

	return pkgerrors.Wrap(r.db.WithContext(ctx).Create(v).Error, "create visitor")
}

// Total counts every visit.
func (r *Repository) Total(ctx context.Context) (int64, error) {
	return r.count(ctx, false, nil)
}

// Unique counts distinct ip addresses.
func (r *Repository) Unique(ctx context.Context) (int64, error) {
	return r.count(ctx, true, nil)
}

// Today counts today's visits.
func (r *Repository) Today(ctx context.Context) (int64, error) {
	today := r.date(r.now())
	return r.count(ctx, false, func(q *gorm.DB) *gorm.DB { return q.Where(dateQueryPattern, today) })
}

// TodayUnique counts today's distinct ip addresses.
func (r *Repository) TodayUnique(ctx context.Context) (int64, error) {
	today := r.date(r.now())
	return r.count(ctx, true, func(q *gorm.DB) *gorm.DB { return q.Where(dateQueryPattern, today) })
}

// ThisWeek counts the visits of the current Monday to Sunday week.
func (r *Repository) ThisWeek(ctx context.Context) (int64, error) {
	from, to := WeekBounds(r.now())
	return r.count(ctx, false, func(q *gorm.DB) *gorm.DB {
		return q.Where("visit_date BETWEEN ? AND ?", r.date(from), r.date(to))
	})
}

// ThisMonth counts the visits of the current calendar month.
func (r *Repository) ThisMonth(ctx context.Context) (int64, error) {
	now := r.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	next := first.AddDate(0, 1, 0)

	return r.count(ctx, false, func(q *gorm.DB) *gorm.DB {
		return q.Where("visit_date >= ? AND visit_date < ?", r.date(first), r.date(next))
	})
}

// Summary collects the overview counts.
func (r *Repository) Summary(ctx context.Context) (Summary, error) {
	var (
		s   Summary
		err error
	)

	steps := []struct {
		dst *int64
		fn  func(context.Context) (int64, error)
	}{
		{&s.Today, r.Today},
		{&s.TodayUnique, r.TodayUnique},
		{&s.Week, r.ThisWeek},
		{&s.Month, r.ThisMonth},
		{&s.Total, r.Total},
		{&s.Unique, r.Unique},
	}
	for _, step := range steps {
		if *step.dst, err = step.fn(ctx); err != nil {
			return s, err
		}
	}

	return s, nil
}

// ByDay returns the visit counts of the last days, today included, oldest
// first. Dates without visits are absent.
func (r *Repository) ByDay(ctx context.Context, days int) ([]DayCount, error) {
	if r.db == nil {
		return nil, ErrDBNil
	}
	if days < 1 {
		return nil, nil
	}

	now := r.now()
	start := r.date(now.AddDate(0, 0, -(days - 1)))

	var out []DayCount
	err := r.db.WithContext(ctx).Model(&models.Visitor{}).
		Select("visit_date AS date, COUNT(*) AS count").
		Where("visit_date >= ? AND visit_date <= ?", start, r.date(now)).
		Group("visit_date").
		Order("visit_date").
		Scan(&out).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count visitors by day")
	}

	for i := range out {
		out[i].Date = normalizeDate(out[i].Date)
	}

	return out, nil
}

// DailySeries returns exactly days entries, oldest first, with zero counts
// for dates without visits.
func (r *Repository) DailySeries(ctx context.Context, days int) ([]DayCount, error) {
	if days < 1 {
		return []DayCount{}, nil
	}

	counts, err := r.ByDay(ctx, days)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c.Count
	}

	now := r.now()
	series := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := r.date(day)
		series = append(series, DayCount{
			Date:  date,
			Label: day.Format(seriesLabel),
			Count: byDate[date],
		})
	}

	return series, nil
}

// TopPages returns the most visited pages, most visits first.
func (r *Repository) TopPages(ctx context.Context, limit int) ([]Count, error) {
	return r.breakdown(ctx, "page_visited", limit)
}

// DeviceBreakdown returns the visits per device type.
func (r *Repository) DeviceBreakdown(ctx context.Context) ([]Count, error) {
	return r.breakdown(ctx, "device_type", 0)
}

// BrowserBreakdown returns the five most common browsers.
func (r *Repository) BrowserBreakdown(ctx context.Context) ([]Count, error) {
	return r.breakdown(ctx, "browser", browserTopN)
}

// breakdown groups by column, limit 0 means all groups.
func (r *Repository) breakdown(ctx context.Context, column string, limit int) ([]Count, error) {
	if r.db == nil {
		return nil, ErrDBNil
	}

	q := r.db.WithContext(ctx).Model(&models.Visitor{}).
		Select(column + " AS label, COUNT(*) AS count").
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Group(column).
		Order("count DESC").
		Order(column)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []Count
	if err := q.Scan(&out).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "count visitors by %s", column)
	}

	return out, nil
}

func (r *Repository) count(ctx context.Context, unique bool, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNil
	}

	q := r.db.WithContext(ctx).Model(&models.Visitor{})
	if scope != nil {
		q = scope(q)
	}
	if unique {
		q = q.Distinct("ip_address")
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, pkgerrors.Wrap(err, "count visitors")
	}

	return n, nil
}

func (r *Repository) date(t time.Time) string {
	return t.Format(models.VisitDateLayout)
}

// WeekBounds returns the Monday and Sunday of the week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())

	return monday, monday.AddDate(0, 0, 6)
}

// normalizeDate trims driver specific time suffixes from a grouped date.
func normalizeDate(s string) string {
	if len(s) > len(models.VisitDateLayout) {
		return s[:len(models.VisitDateLayout)]
	}

	return s
}
