package visitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/laceandcraft/storefront/internal/db/models"
)

// Wednesday.
var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func setupRepository(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.Visitor{}), "failed to migrate test database")

	return New(db).WithClock(func() time.Time { return fixedNow }), db
}

type visit struct {
	ip, page, device, browser, date string
}

func seedVisits(t *testing.T, repo *Repository, visits ...visit) {
	t.Helper()

	for _, v := range visits {
		require.NoError(t, repo.Create(context.Background(), &models.Visitor{
			IPAddress:   v.ip,
			PageVisited: v.page,
			DeviceType:  v.device,
			Browser:     v.browser,
			OS:          "Windows",
			VisitDate:   v.date,
		}))
	}
}

func TestCounts(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()
	seedVisits(t, repo,
		visit{"1.1.1.1", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"1.1.1.1", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"2.2.2.2", "/", "Mobile", "Safari", "2026-10-14"},
		visit{"3.3.3.3", "/", "Mobile", "Safari", "2026-10-12"}, // monday
		visit{"3.3.3.3", "/", "Mobile", "Safari", "2026-10-11"}, // previous sunday
		visit{"4.4.4.4", "/", "Tablet", "Firefox", "2026-10-01"},
		visit{"5.5.5.5", "/", "Desktop", "Edge", "2026-09-30"},
	)

	tests := []struct {
		name string
		fn   func(context.Context) (int64, error)
		want int64
	}{
		{"total", repo.Total, 7},
		{"unique", repo.Unique, 5},
		{"today", repo.Today, 3},
		{"today unique", repo.TodayUnique, 2},
		{"this week", repo.ThisWeek, 4},
		{"this month", repo.ThisMonth, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Today: 3, TodayUnique: 2, Week: 4, Month: 6, Total: 7, Unique: 5}, summary)
}

func TestByDayAndDailySeries(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	// two visits two days ago, none yesterday, one today
	seedVisits(t, repo,
		visit{"1.1.1.1", "/", "Desktop", "Chrome", "2026-10-12"},
		visit{"2.2.2.2", "/", "Desktop", "Chrome", "2026-10-12"},
		visit{"1.1.1.1", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"9.9.9.9", "/", "Desktop", "Chrome", "2026-10-11"},
	)

	byDay, err := repo.ByDay(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []DayCount{
		{Date: "2026-10-12", Count: 2},
		{Date: "2026-10-14", Count: 1},
	}, byDay)

	series, err := repo.DailySeries(ctx, 3)
	require.NoError(t, err)
	require.Len(t, series, 3)

	counts := make([]int64, 0, len(series))
	for _, d := range series {
		counts = append(counts, d.Count)
	}
	assert.Equal(t, []int64{2, 0, 1}, counts)
	assert.Equal(t, "2026-10-12", series[0].Date)
	assert.Equal(t, "Oct 12", series[0].Label)
	assert.Equal(t, "2026-10-14", series[2].Date)

	empty, err := repo.ByDay(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDailySeriesWithoutDays(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	for _, days := range []int{0, -1} {
		series, err := repo.DailySeries(ctx, days)
		require.NoError(t, err)
		assert.Empty(t, series)
	}
}

func TestByDayIgnoresFutureDates(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	seedVisits(t, repo,
		visit{"1.1.1.1", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"2.2.2.2", "/", "Desktop", "Chrome", "2026-10-15"},
		visit{"3.3.3.3", "/", "Desktop", "Chrome", "2026-11-02"},
	)

	byDay, err := repo.ByDay(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []DayCount{{Date: "2026-10-14", Count: 1}}, byDay)

	series, err := repo.DailySeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 7)

	var total int64
	for _, d := range series {
		total += d.Count
	}
	assert.Equal(t, int64(1), total)
}

func TestBreakdowns(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()
	seedVisits(t, repo,
		visit{"1", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"2", "/", "Desktop", "Chrome", "2026-10-14"},
		visit{"3", "/", "Mobile", "Safari", "2026-10-14"},
		visit{"4", "/gallery", "Mobile", "Firefox", "2026-10-14"},
		visit{"5", "/gallery", "Tablet", "Edge", "2026-10-14"},
		visit{"6", "/about", "Desktop", "Opera", "2026-10-14"},
		visit{"7", "/about", "Desktop", "Internet Explorer", "2026-10-14"},
		visit{"8", "/contact", "Desktop", "Other", "2026-10-14"},
	)

	pages, err := repo.TopPages(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []Count{{Label: "/", Count: 3}, {Label: "/about", Count: 2}}, pages)

	devices, err := repo.DeviceBreakdown(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Count{
		{Label: "Desktop", Count: 5},
		{Label: "Mobile", Count: 2},
		{Label: "Tablet", Count: 1},
	}, devices)

	browsers, err := repo.BrowserBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, browsers, 5)
	assert.Equal(t, Count{Label: "Chrome", Count: 2}, browsers[0])
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		day    time.Time
		monday string
		sunday string
	}{
		{time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC), "2026-10-12", "2026-10-18"},
		{time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), "2026-10-12", "2026-10-18"},
		{time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), "2026-10-12", "2026-10-18"},
		{time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), "2026-10-26", "2026-11-01"},
	}

	for _, tt := range tests {
		monday, sunday := WeekBounds(tt.day)
		assert.Equal(t, tt.monday, monday.Format(models.VisitDateLayout))
		assert.Equal(t, tt.sunday, sunday.Format(models.VisitDateLayout))
	}
}

func TestNilDB(t *testing.T) {
	repo := New(nil)
	ctx := context.Background()

	require.ErrorIs(t, repo.Create(ctx, &models.Visitor{}), ErrDBNil)
	_, err := repo.Total(ctx)
	require.ErrorIs(t, err, ErrDBNil)
	_, err = repo.ByDay(ctx, 7)
	require.ErrorIs(t, err, ErrDBNil)
	_, err = repo.TopPages(ctx, 5)
	require.ErrorIs(t, err, ErrDBNil)
}
