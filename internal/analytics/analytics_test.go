package analytics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laceandcraft/storefront/internal/db/models"
)

const (
	chromeDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	safariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15"
	iPadMobile    = "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	iPadNoMobile  = "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 Safari/604.1"
	firefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0"
	edgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0"
	ie11          = "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko"
	googlebot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		ua     string
		want   bool
	}{
		{"admin area", "GET", "admin/resources", chromeDesktop, false},
		{"page", "GET", "products", chromeDesktop, true},
		{"root", "GET", "/", chromeDesktop, true},
		{"leading slash is ignored", "GET", "/api/visits", chromeDesktop, false},
		{"prefix match is not a segment match", "GET", "storage-tips", chromeDesktop, false},
		{"prefix match is case sensitive", "GET", "Admin", chromeDesktop, true},
		{"favicon", "GET", "favicon.ico", chromeDesktop, false},
		{"vendor assets", "GET", "vendor/app.js", chromeDesktop, false},
		{"googlebot", "GET", "products", googlebot, false},
		{"generic crawler", "GET", "products", "SomeCrawler/1.0", false},
		{"post", "POST", "contact", chromeDesktop, false},
		{"head", "HEAD", "products", chromeDesktop, false},
		{"empty user agent", "GET", "products", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTrack(tt.method, tt.path, tt.ua))
		})
	}
}

func TestDevice(t *testing.T) {
	tests := map[string]string{
		"Mozilla/5.0 (Linux; Android 10; Mobile)": DeviceMobile,
		iPadMobile:    DeviceMobile,
		iPadNoMobile:  DeviceTablet,
		"Kindle/3.0":  DeviceTablet,
		chromeDesktop: DeviceDesktop,
		"":            DeviceDesktop,
	}

	for ua, want := range tests {
		assert.Equal(t, want, Device(ua), ua)
	}
}

func TestBrowser(t *testing.T) {
	tests := map[string]string{
		edgeWindows:   "Edge",
		chromeDesktop: "Chrome",
		safariMac:     "Safari",
		firefoxLinux:  "Firefox",
		ie11:          "IE",
		"Opera/9.80 (Windows NT 6.1) Presto/2.12.388 Version/12.16": "Opera",
		"curl/8.0": Other,
	}

	for ua, want := range tests {
		assert.Equal(t, want, Browser(ua), ua)
	}
}

func TestOS(t *testing.T) {
	tests := map[string]string{
		chromeDesktop: "Windows",
		safariMac:     "macOS",
		firefoxLinux:  "Linux",
		"Mozilla/5.0 (Linux; Android 14; Pixel 8)": "Linux",
		"Dalvik/2.1.0 (Android 14)":                "Android",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5)": "iOS",
		"curl/8.0": Other,
	}

	for ua, want := range tests {
		assert.Equal(t, want, OS(ua), ua)
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher("none",
		Rule{"first", Pattern(`a`)},
		Rule{"second", All(Pattern(`b`), Not(Pattern(`c`)))},
	)

	assert.Equal(t, "first", m.Match("AB"))
	assert.Equal(t, "second", m.Match("b"))
	assert.Equal(t, "none", m.Match("bc"))
	assert.Equal(t, "none", m.Match(""))
}

type memoryStore struct {
	visits []*models.Visitor
	err    error
}

func (s *memoryStore) Create(_ context.Context, v *models.Visitor) error {
	if s.err != nil {
		return s.err
	}
	s.visits = append(s.visits, v)

	return nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 14, 23, 59, 0, 0, time.UTC)
}

func TestRecorderTrack(t *testing.T) {
	store := &memoryStore{}
	rec := NewRecorder(store).WithClock(fixedClock)
	ctx := context.Background()

	rec.Track(ctx, Request{Method: "GET", Path: "/", IP: "203.0.113.9", UserAgent: chromeDesktop})
	rec.Track(ctx, Request{Method: "GET", Path: "products", IP: "203.0.113.9", UserAgent: iPadMobile, Referrer: "https://google.com/"})
	rec.Track(ctx, Request{Method: "GET", Path: "admin", IP: "203.0.113.9", UserAgent: chromeDesktop})
	rec.Track(ctx, Request{Method: "GET", Path: "products", IP: "203.0.113.9", UserAgent: googlebot})

	require.Len(t, store.visits, 2)

	home := store.visits[0]
	assert.Equal(t, "/", home.PageVisited)
	assert.Equal(t, "203.0.113.9", home.IPAddress)
	assert.Equal(t, DeviceDesktop, home.DeviceType)
	assert.Equal(t, "Chrome", home.Browser)
	assert.Equal(t, "Windows", home.OS)
	assert.Equal(t, "2026-10-14", home.VisitDate)
	assert.Nil(t, home.Referrer)

	products := store.visits[1]
	assert.Equal(t, "/products", products.PageVisited)
	assert.Equal(t, DeviceMobile, products.DeviceType)
	assert.Equal(t, "Safari", products.Browser)
	assert.Equal(t, "macOS", products.OS)
	require.NotNil(t, products.Referrer)
	assert.Equal(t, "https://google.com/", *products.Referrer)
}

func TestRecorderTruncates(t *testing.T) {
	store := &memoryStore{}
	rec := NewRecorder(store).WithClock(fixedClock)

	long := "Mozilla/5.0 " + strings.Repeat("x", 400)
	rec.Track(context.Background(), Request{
		Method:    "GET",
		Path:      "gallery",
		UserAgent: long,
		Referrer:  "https://example.com/" + strings.Repeat("é", 200),
	})

	require.Len(t, store.visits, 1)
	v := store.visits[0]
	assert.Len(t, v.UserAgent, 255)
	require.NotNil(t, v.Referrer)
	assert.LessOrEqual(t, len(*v.Referrer), 255)
	assert.True(t, strings.HasPrefix(*v.Referrer, "https://example.com/é"))
}

func TestRecorderSwallowsStoreErrors(t *testing.T) {
	var buf strings.Builder
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })

	store := &memoryStore{err: errors.New("disk full")}
	rec := NewRecorder(store)

	assert.NotPanics(t, func() {
		rec.Track(context.Background(), Request{Method: "GET", Path: "products", UserAgent: chromeDesktop})
	})
	assert.Contains(t, buf.String(), "visitor tracking failed")
	assert.Contains(t, buf.String(), "disk full")
}
