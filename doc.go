// Package main is the entry point of the storefront service. It serves the
// marketing page of Mary's Lace n Craft with its SEO metadata, sitemap and
// robots.txt, stores contact form submissions and records page views for the
// visitor statistics. Content lives in a gorm database (sqlite, mysql or
// postgres) and is read through a fiber storage cache.
package main
