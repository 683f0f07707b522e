package analytics

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/laceandcraft/storefront/internal/db/models"
)

const maxFieldLength = 255

var (
	excludedPrefixes = []string{
		"admin",
		"livewire",
		"api",
		"_debugbar",
		"sanctum",
		"storage",
		"build",
		"favicon.ico",
		"vendor",
	}

	botMarkers = []string{"bot", "crawler", "spider", "slurp", "googlebot", "bingbot"}

	pageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_page_views_total",
		Help: "Number of recorded page views by device type.",
	}, []string{"device"})

	trackFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_page_view_failures_total",
		Help: "Number of page views that could not be stored.",
	})
)

// ShouldTrack reports whether a request is a trackable page view: a GET
// outside the excluded areas from a client that is not a known crawler.
// path may carry a leading slash.
func ShouldTrack(method, path, userAgent string) bool {
	if method != http.MethodGet {
		return false
	}

	path = strings.TrimLeft(path, "/")
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	ua := strings.ToLower(userAgent)
	for _, bot := range botMarkers {
		if strings.Contains(ua, bot) {
			return false
		}
	}

	return true
}

// Request is the part of an http request a page view is built from.
type Request struct {
	Method    string
	Path      string
	IP        string
	UserAgent string
	Referrer  string
}

// Store persists page views.
type Store interface {
	Create(ctx context.Context, v *models.Visitor) error
}

// Recorder turns trackable requests into stored page views.
type Recorder struct {
	store Store
	now   func() time.Time
}

// NewRecorder returns a recorder writing to store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// WithClock replaces the clock the visit date is taken from.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// Visit builds the page view of req.
func (r *Recorder) Visit(req Request) *models.Visitor {
	ua := truncate(req.UserAgent, maxFieldLength)

	v := &models.Visitor{
		IPAddress:   req.IP,
		UserAgent:   ua,
		PageVisited: "/" + strings.TrimLeft(req.Path, "/"),
		DeviceType:  Device(req.UserAgent),
		Browser:     Browser(req.UserAgent),
		OS:          OS(req.UserAgent),
		VisitDate:   r.now().Format(models.VisitDateLayout),
	}
	if req.Referrer != "" {
		ref := truncate(req.Referrer, maxFieldLength)
		v.Referrer = &ref
	}

	return v
}

// Track records req when it is trackable. Failures are logged and never
// returned, a broken store must not break the page.
func (r *Recorder) Track(ctx context.Context, req Request) {
	if !ShouldTrack(req.Method, req.Path, req.UserAgent) {
		return
	}

	v := r.Visit(req)
	if err := r.store.Create(ctx, v); err != nil {
		trackFailures.Inc()
		log.Error().Err(err).Str("page", v.PageVisited).Msg("visitor tracking failed")
		return
	}

	pageViews.WithLabelValues(v.DeviceType).Inc()
}

// truncate cuts s to at most n bytes without splitting a utf-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
