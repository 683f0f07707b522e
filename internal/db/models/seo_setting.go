package models

import "time"

// Defaults applied when the matching SeoSetting column is empty.
const (
	DefaultOGType       = "website"
	DefaultTwitterCard  = "summary_large_image"
	DefaultBusinessType = "LocalBusiness"
	DefaultCountry      = "US"
)

// OpeningHours is one entry of the business hours list.
type OpeningHours struct {
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

// SeoSetting holds page meta data, social cards and local business data.
// Only one row is expected to be active.
type SeoSetting struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	MetaTitle       *string `gorm:"size:255" json:"meta_title"`
	MetaDescription *string `gorm:"type:text" json:"meta_description"`
	MetaKeywords    *string `gorm:"type:text" json:"meta_keywords"`
	CanonicalURL    *string `gorm:"size:255" json:"canonical_url"`

	OGTitle       *string `gorm:"column:og_title;size:255" json:"og_title"`
	OGDescription *string `gorm:"column:og_description;type:text" json:"og_description"`
	OGImage       *string `gorm:"column:og_image;size:255" json:"og_image"`
	OGType        *string `gorm:"column:og_type;size:64" json:"og_type"`
	OGSiteName    *string `gorm:"column:og_site_name;size:255" json:"og_site_name"`

	TwitterCard        *string `gorm:"size:64" json:"twitter_card"`
	TwitterTitle       *string `gorm:"size:255" json:"twitter_title"`
	TwitterDescription *string `gorm:"type:text" json:"twitter_description"`
	TwitterImage       *string `gorm:"size:255" json:"twitter_image"`
	TwitterSite        *string `gorm:"size:255" json:"twitter_site"`

	BusinessName           *string        `gorm:"size:255" json:"business_name"`
	BusinessType           *string        `gorm:"size:64" json:"business_type"`
	BusinessDescription    *string        `gorm:"type:text" json:"business_description"`
	BusinessPhone          *string        `gorm:"size:64" json:"business_phone"`
	BusinessEmail          *string        `gorm:"size:255" json:"business_email"`
	BusinessAddressStreet  *string        `gorm:"size:255" json:"business_address_street"`
	BusinessAddressCity    *string        `gorm:"size:255" json:"business_address_city"`
	BusinessAddressState   *string        `gorm:"size:255" json:"business_address_state"`
	BusinessAddressZip     *string        `gorm:"size:32" json:"business_address_zip"`
	BusinessAddressCountry *string        `gorm:"size:8" json:"business_address_country"`
	BusinessLatitude       *float64       `gorm:"type:decimal(10,7)" json:"business_latitude"`
	BusinessLongitude      *float64       `gorm:"type:decimal(10,7)" json:"business_longitude"`
	BusinessLogo           *string        `gorm:"size:255" json:"business_logo"`
	BusinessHours          []OpeningHours `gorm:"serializer:json;type:text" json:"business_hours"`
	BusinessPriceRange     *string        `gorm:"size:32" json:"business_price_range"`

	FacebookURL       *string `gorm:"column:facebook_url;size:255" json:"facebook_url"`
	InstagramURL      *string `gorm:"column:instagram_url;size:255" json:"instagram_url"`
	TwitterURL        *string `gorm:"column:twitter_url;size:255" json:"twitter_url"`
	PinterestURL      *string `gorm:"column:pinterest_url;size:255" json:"pinterest_url"`
	YelpURL           *string `gorm:"column:yelp_url;size:255" json:"yelp_url"`
	GoogleBusinessURL *string `gorm:"column:google_business_url;size:255" json:"google_business_url"`

	RobotsTxt                 *string `gorm:"type:text" json:"robots_txt"`
	GoogleSiteVerification    *string `gorm:"size:255" json:"google_site_verification"`
	BingSiteVerification      *string `gorm:"size:255" json:"bing_site_verification"`
	PinterestSiteVerification *string `gorm:"size:255" json:"pinterest_site_verification"`
	CustomHeadScripts         *string `gorm:"type:text" json:"custom_head_scripts"`
	CustomBodyScripts         *string `gorm:"type:text" json:"custom_body_scripts"`
	GoogleAnalyticsID         *string `gorm:"column:google_analytics_id;size:64" json:"google_analytics_id"`
	GoogleTagManagerID        *string `gorm:"column:google_tag_manager_id;size:64" json:"google_tag_manager_id"`
	FacebookPixelID           *string `gorm:"column:facebook_pixel_id;size:64" json:"facebook_pixel_id"`

	IsActive  bool      `gorm:"index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Str returns s as a nullable column value, nil for the empty string.
func Str(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Val dereferences a nullable column, "" for nil.
func Val(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// Coalesce returns the first non-empty value.
func Coalesce(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}

	return ""
}
