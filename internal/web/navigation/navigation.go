// Package navigation builds the site menu from the page sections.
package navigation

import "github.com/laceandcraft/storefront/internal/seo"

// Item is one menu link.
type Item struct {
	Title  string
	Anchor string
	URL    string
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle     string
	ActiveSection string
	Items         []Item
}

// NewContext creates a navigation context with the menu of the site sections.
func NewContext(pageTitle, activeSection string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Items:         Menu(seo.Sections),
	}
}

// Menu returns a menu item per section. The page itself is linked as home.
func Menu(sections []seo.Section) []Item {
	items := make([]Item, 0, len(sections))
	for _, s := range sections {
		anchor := s.Anchor
		if anchor == "" {
			anchor = "home"
		}

		items = append(items, Item{
			Title:  s.Title,
			Anchor: anchor,
			URL:    "#" + anchor,
		})
	}

	return items
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
