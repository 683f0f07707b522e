package seo

import "github.com/laceandcraft/storefront/internal/db/models"

// MetaTags returns the meta and social card tags of seo keyed by name or
// property. A tag whose value would be empty is left out.
func MetaTags(seo *models.SeoSetting, site Site) map[string]string {
	tags := make(map[string]string)
	if seo == nil {
		return tags
	}

	set := func(name string, value *string) {
		if v := models.Val(value); v != "" {
			tags[name] = v
		}
	}

	set("description", seo.MetaDescription)
	set("keywords", seo.MetaKeywords)

	set("og:title", firstOf(seo.OGTitle, seo.MetaTitle))
	set("og:description", firstOf(seo.OGDescription, seo.MetaDescription))
	set("og:image", site.asset(seo.OGImage))
	tags["og:type"] = models.Coalesce(seo.OGType, models.Str(models.DefaultOGType))
	set("og:site_name", seo.OGSiteName)
	set("og:url", models.Str(site.URL))

	tags["twitter:card"] = models.Coalesce(seo.TwitterCard, models.Str(models.DefaultTwitterCard))
	set("twitter:title", firstOf(seo.TwitterTitle, seo.MetaTitle))
	set("twitter:description", firstOf(seo.TwitterDescription, seo.MetaDescription))
	set("twitter:image", firstOf(site.asset(seo.TwitterImage), site.asset(seo.OGImage)))
	set("twitter:site", seo.TwitterSite)

	return tags
}
