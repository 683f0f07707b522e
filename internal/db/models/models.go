package models

// All returns every model for AutoMigrate.
func All() []any {
	return []any{
		&SiteSetting{},
		&SeoSetting{},
		&HeroSection{},
		&AboutSection{},
		&ProductCategory{},
		&GalleryItem{},
		&Testimonial{},
		&ContactSubmission{},
		&Visitor{},
	}
}
