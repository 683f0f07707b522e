package seo

import (
	"strings"

	"github.com/laceandcraft/storefront/internal/db/models"
)

// Robots returns the custom robots.txt of seo, or the default rules with
// the sitemap location when none is stored.
func Robots(seo *models.SeoSetting, site Site) string {
	if seo != nil && models.Val(seo.RobotsTxt) != "" {
		return *seo.RobotsTxt
	}

	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Allow: /\n")
	sb.WriteString("Disallow: /admin/\n")
	sb.WriteString("Disallow: /api/\n")
	sb.WriteString("\n")
	sb.WriteString("Sitemap: ")
	sb.WriteString(site.URL)
	sb.WriteString("/sitemap.xml\n")

	return sb.String()
}
