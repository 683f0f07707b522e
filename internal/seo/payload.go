package seo

import "github.com/laceandcraft/storefront/internal/db/models"

// SocialLinks are the profile urls shown in the footer.
type SocialLinks struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	Pinterest *string `json:"pinterest"`
	Yelp      *string `json:"yelp"`
	Google    *string `json:"google"`
}

// Payload is the SEO view handed to the page renderer.
type Payload struct {
	Title                     *string           `json:"title"`
	Description               *string           `json:"description"`
	Keywords                  *string           `json:"keywords"`
	OGTitle                   *string           `json:"ogTitle"`
	OGDescription             *string           `json:"ogDescription"`
	OGImage                   *string           `json:"ogImage"`
	OGType                    *string           `json:"ogType"`
	OGSiteName                *string           `json:"ogSiteName"`
	TwitterCard               *string           `json:"twitterCard"`
	TwitterSite               *string           `json:"twitterSite"`
	CanonicalURL              string            `json:"canonicalUrl"`
	MetaTags                  map[string]string `json:"metaTags"`
	LocalBusiness             map[string]any    `json:"localBusiness"`
	GoogleAnalyticsID         *string           `json:"googleAnalyticsId"`
	GoogleTagManagerID        *string           `json:"googleTagManagerId"`
	FacebookPixelID           *string           `json:"facebookPixelId"`
	CustomHeadScripts         *string           `json:"customHeadScripts"`
	CustomBodyScripts         *string           `json:"customBodyScripts"`
	GoogleSiteVerification    *string           `json:"googleSiteVerification"`
	BingSiteVerification      *string           `json:"bingSiteVerification"`
	PinterestSiteVerification *string           `json:"pinterestSiteVerification"`
	SocialLinks               SocialLinks       `json:"socialLinks"`
}

// BuildPayload returns the SEO view of seo, nil when seo is nil.
func BuildPayload(seo *models.SeoSetting, site Site) *Payload {
	if seo == nil {
		return nil
	}

	canonical := models.Val(seo.CanonicalURL)
	if canonical == "" {
		canonical = site.URL
	}

	return &Payload{
		Title:                     seo.MetaTitle,
		Description:               seo.MetaDescription,
		Keywords:                  seo.MetaKeywords,
		OGTitle:                   firstOf(seo.OGTitle, seo.MetaTitle),
		OGDescription:             firstOf(seo.OGDescription, seo.MetaDescription),
		OGImage:                   site.asset(seo.OGImage),
		OGType:                    seo.OGType,
		OGSiteName:                seo.OGSiteName,
		TwitterCard:               seo.TwitterCard,
		TwitterSite:               seo.TwitterSite,
		CanonicalURL:              canonical,
		MetaTags:                  MetaTags(seo, site),
		LocalBusiness:             LocalBusinessJSONLD(seo, site),
		GoogleAnalyticsID:         seo.GoogleAnalyticsID,
		GoogleTagManagerID:        seo.GoogleTagManagerID,
		FacebookPixelID:           seo.FacebookPixelID,
		CustomHeadScripts:         seo.CustomHeadScripts,
		CustomBodyScripts:         seo.CustomBodyScripts,
		GoogleSiteVerification:    seo.GoogleSiteVerification,
		BingSiteVerification:      seo.BingSiteVerification,
		PinterestSiteVerification: seo.PinterestSiteVerification,
		SocialLinks: SocialLinks{
			Facebook:  seo.FacebookURL,
			Instagram: seo.InstagramURL,
			Twitter:   seo.TwitterURL,
			Pinterest: seo.PinterestURL,
			Yelp:      seo.YelpURL,
			Google:    seo.GoogleBusinessURL,
		},
	}
}
