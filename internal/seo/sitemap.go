package seo

import (
	"encoding/xml"
	"time"

	"github.com/pkg/errors"
)

// XMLNamespace is the sitemap protocol namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is how often a location is expected to change.
type ChangeFreq string

// Change frequencies used by the storefront.
const (
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// Section is one addressable part of the single page site.
type Section struct {
	Anchor     string // fragment without '#', empty for the page itself
	Title      string
	ChangeFreq ChangeFreq
	Priority   string
}

// Sections lists the page sections in sitemap order.
var Sections = []Section{
	{Anchor: "", Title: "Home", ChangeFreq: ChangeFreqWeekly, Priority: "1.0"},
	{Anchor: "about", Title: "About", ChangeFreq: ChangeFreqMonthly, Priority: "0.8"},
	{Anchor: "products", Title: "Products", ChangeFreq: ChangeFreqWeekly, Priority: "0.9"},
	{Anchor: "gallery", Title: "Gallery", ChangeFreq: ChangeFreqWeekly, Priority: "0.7"},
	{Anchor: "contact", Title: "Contact", ChangeFreq: ChangeFreqMonthly, Priority: "0.8"},
}

// Path returns the site relative link of the section.
func (s Section) Path() string {
	if s.Anchor == "" {
		return "/"
	}

	return "/#" + s.Anchor
}

// SitemapURL is a single <url> entry.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap is the <urlset> document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap returns the sitemap of site with every lastmod set to now.
func BuildSitemap(site Site, now time.Time) Sitemap {
	lastMod := now.Format(time.RFC3339)

	urls := make([]SitemapURL, 0, len(Sections))
	for _, s := range Sections {
		loc := site.URL
		if s.Anchor != "" {
			loc += "/#" + s.Anchor
		}
		urls = append(urls, SitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: s.ChangeFreq,
			Priority:   s.Priority,
		})
	}

	return Sitemap{XMLNS: XMLNamespace, URLs: urls}
}

// XML encodes the sitemap with the xml header.
func (s Sitemap) XML() ([]byte, error) {
	out, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode sitemap")
	}

	return append([]byte(xml.Header), out...), nil
}
