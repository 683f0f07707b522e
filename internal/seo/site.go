// Package seo derives the search engine artifacts of the site: meta tags,
// local business JSON-LD, the page SEO payload, sitemap.xml and robots.txt.
package seo

import (
	"strings"

	"github.com/laceandcraft/storefront/internal/db/models"
)

// DefaultAssetPath is the public prefix uploaded images are served from.
const DefaultAssetPath = "/storage/"

// Site is the public location of the storefront.
type Site struct {
	URL       string // base url without trailing slash
	AssetPath string // public prefix of stored images
}

// NewSite normalizes url and assetPath.
func NewSite(url, assetPath string) Site {
	if assetPath == "" {
		assetPath = DefaultAssetPath
	}

	return Site{
		URL:       strings.TrimRight(url, "/"),
		AssetPath: "/" + strings.Trim(assetPath, "/") + "/",
	}
}

// Asset returns the public url of a stored image path.
// Absolute urls are returned unchanged.
func (s Site) Asset(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return s.URL + s.AssetPath + strings.TrimLeft(path, "/")
}

// asset is Asset for a nullable column, nil stays nil.
func (s Site) asset(path *string) *string {
	if models.Val(path) == "" {
		return nil
	}

	u := s.Asset(*path)
	return &u
}

// firstOf returns the first non-empty value, nil when there is none.
func firstOf(values ...*string) *string {
	for _, v := range values {
		if models.Val(v) != "" {
			return v
		}
	}

	return nil
}
