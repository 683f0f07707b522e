package seo

import "github.com/laceandcraft/storefront/internal/db/models"

const schemaContext = "https://schema.org"

// LocalBusinessJSONLD returns the schema.org local business document of seo.
// name, description, telephone and email are always present, null when unset.
func LocalBusinessJSONLD(seo *models.SeoSetting, site Site) map[string]any {
	if seo == nil {
		return nil
	}

	data := map[string]any{
		"@context":    schemaContext,
		"@type":       models.Coalesce(seo.BusinessType, models.Str(models.DefaultBusinessType)),
		"name":        seo.BusinessName,
		"description": seo.BusinessDescription,
		"telephone":   seo.BusinessPhone,
		"email":       seo.BusinessEmail,
		"url":         site.URL,
	}

	if logo := site.asset(seo.BusinessLogo); logo != nil {
		data["logo"] = *logo
		data["image"] = *logo
	}

	if models.Val(seo.BusinessAddressStreet) != "" {
		data["address"] = map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   seo.BusinessAddressStreet,
			"addressLocality": seo.BusinessAddressCity,
			"addressRegion":   seo.BusinessAddressState,
			"postalCode":      seo.BusinessAddressZip,
			"addressCountry":  seo.BusinessAddressCountry,
		}
	}

	if seo.BusinessLatitude != nil && seo.BusinessLongitude != nil {
		data["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  *seo.BusinessLatitude,
			"longitude": *seo.BusinessLongitude,
		}
	}

	if len(seo.BusinessHours) > 0 {
		data["openingHoursSpecification"] = seo.BusinessHours
	}

	if models.Val(seo.BusinessPriceRange) != "" {
		data["priceRange"] = *seo.BusinessPriceRange
	}

	if sameAs := SameAs(seo); len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}

	return data
}

// SameAs returns the non-empty social profile urls: facebook, instagram,
// pinterest, yelp and google business, in that order.
func SameAs(seo *models.SeoSetting) []string {
	var out []string
	for _, u := range []*string{
		seo.FacebookURL,
		seo.InstagramURL,
		seo.PinterestURL,
		seo.YelpURL,
		seo.GoogleBusinessURL,
	} {
		if v := models.Val(u); v != "" {
			out = append(out, v)
		}
	}

	return out
}
