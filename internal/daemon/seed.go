package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/laceandcraft/storefront/internal/db/models"
)

const (
	siteName     = "Mary's Lace n Craft"
	sitePhone    = "(626) 918-8511"
	weekdayHours = "9am - 6pm"
)

// SeedIfEmpty seeds the default site content when no setting and no hero exist.
// It reports whether seeding ran.
func SeedIfEmpty(db *gorm.DB, siteURL string) (bool, error) {
	var settings, heroes int64

	if err := db.Model(&models.SiteSetting{}).Count(&settings).Error; err != nil {
		return false, errors.Wrap(err, "failed to count site settings")
	}

	if err := db.Model(&models.HeroSection{}).Count(&heroes).Error; err != nil {
		return false, errors.Wrap(err, "failed to count hero sections")
	}

	if settings > 0 || heroes > 0 {
		return false, nil
	}

	log.Info().Msg("empty database, seeding default site content")

	return true, Seed(db, siteURL)
}

// Seed writes the default settings, sections, catalogue and SEO record.
// Existing rows are matched by key, id, title or author and overwritten.
func Seed(db *gorm.DB, siteURL string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			fn   func(*gorm.DB) error
		}{
			{"site settings", seedSettings},
			{"hero section", seedHero},
			{"about section", seedAbout},
			{"product categories", seedCategories},
			{"gallery items", seedGallery},
			{"testimonials", seedTestimonials},
			{"seo settings", func(tx *gorm.DB) error { return seedSeo(tx, siteURL) }},
		}

		for _, step := range steps {
			if err := step.fn(tx); err != nil {
				return errors.Wrap(err, "failed to seed "+step.name)
			}

			log.Debug().Str("step", step.name).Msg("seeded")
		}

		return nil
	})
}

func seedSettings(tx *gorm.DB) error {
	rows := []models.SiteSetting{
		{Key: "site_name", Value: siteName, Type: "text", Group: "general", Label: "Site Name", Order: 1},
		{
			Key:   "footer_tagline",
			Value: "Your wholesale and retail destination for craft supplies in La Puente, CA. Lace, ribbons, baskets, flowers & party favors for all events.",
			Type:  "textarea", Group: "general", Label: "Footer Tagline", Order: 2,
		},
		{Key: "phone", Value: sitePhone, Type: "text", Group: "contact", Label: "Phone Number", Order: 1},
		{Key: "address_line1", Value: "1629 N Hacienda Blvd", Type: "text", Group: "contact", Label: "Address Line 1", Order: 2},
		{Key: "address_line2", Value: "La Puente, CA 91744", Type: "text", Group: "contact", Label: "Address Line 2", Order: 3},
		{Key: "hours_monday", Value: weekdayHours, Type: "text", Group: "hours", Label: "Monday Hours", Order: 1},
		{Key: "hours_tuesday", Value: weekdayHours, Type: "text", Group: "hours", Label: "Tuesday Hours", Order: 2},
		{Key: "hours_wednesday", Value: weekdayHours, Type: "text", Group: "hours", Label: "Wednesday Hours", Order: 3},
		{Key: "hours_thursday", Value: weekdayHours, Type: "text", Group: "hours", Label: "Thursday Hours", Order: 4},
		{Key: "hours_friday", Value: weekdayHours, Type: "text", Group: "hours", Label: "Friday Hours", Order: 5},
		{Key: "hours_saturday", Value: "10am - 5pm", Type: "text", Group: "hours", Label: "Saturday Hours", Order: 6},
		{Key: "hours_sunday", Value: "Closed", Type: "text", Group: "hours", Label: "Sunday Hours", Order: 7},
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "group", "label", "order", "updated_at"}),
	}).Create(&rows).Error
}

func seedHero(tx *gorm.DB) error {
	return upsert(tx, &models.HeroSection{ID: 1}, &models.HeroSection{
		ID:                  1,
		BadgeText:           models.Str("Wholesale & Retail Craft Supplies"),
		TitleLine1:          "Where Creativity",
		TitleLine2:          models.Str("Blossoms"),
		Subtitle:            models.Str("Your one-stop shop for wholesale and retail craft supplies: lace, ribbons, baskets, flowers, and party favors for all your special events."),
		PrimaryButtonText:   models.Str("Explore Collection"),
		PrimaryButtonLink:   models.Str("#products"),
		SecondaryButtonText: models.Str("Visit Our Store"),
		SecondaryButtonLink: models.Str("#contact"),
		IsActive:            true,
	})
}

func seedAbout(tx *gorm.DB) error {
	return upsert(tx, &models.AboutSection{ID: 1}, &models.AboutSection{
		ID:                  1,
		BadgeText:           models.Str("Our Story"),
		TitleLine1:          "Crafted with Love,",
		TitleLine2:          models.Str("Curated with Care"),
		LeadParagraph:       models.Str(siteName + " is your trusted source for wholesale and retail craft supplies in La Puente, California."),
		Content:             models.Str("We specialize in lace, ribbons, baskets, flowers, and party favors for all your special events, from weddings and quinceañeras to baby showers and birthday parties. Whether you're a professional event planner or a DIY enthusiast, we have everything you need to make your celebrations beautiful."),
		StatNumber:          models.Str("14+"),
		StatLabel:           models.Str("Years of Passion"),
		Feature1Title:       models.Str("Premium Quality"),
		Feature1Description: models.Str("Hand-selected materials"),
		Feature2Title:       models.Str("Unique Selection"),
		Feature2Description: models.Str("Rare finds & classics"),
		IsActive:            true,
	})
}

func seedCategories(tx *gorm.DB) error {
	rows := []struct{ title, description, icon, from, to string }{
		{"Ribbons", "Satin, grosgrain, organza, velvet and more in every color imaginable", "🎀", "pink-100", "pink-50"},
		{"Laces & Trims", "Vintage-inspired and contemporary laces for elegant finishing touches", "✨", "amber-100", "amber-50"},
		{"Party Favors", "Beautiful favors and supplies for weddings, quinceañeras, baby showers & all events", "🎁", "rose-100", "rose-50"},
		{"Flowers", "Silk flowers, floral arrangements and supplies for stunning decorations", "🌸", "pink-100", "pink-50"},
		{"Baskets", "Decorative baskets in all sizes perfect for gifts and arrangements", "🧺", "amber-100", "amber-50"},
		{"Event Supplies", "Everything you need for birthdays, holidays, and special celebrations", "🎉", "stone-200", "stone-100"},
	}

	for i, r := range rows {
		err := upsert(tx, &models.ProductCategory{Title: r.title}, &models.ProductCategory{
			Title:       r.title,
			Description: models.Str(r.description),
			Icon:        models.Str(r.icon),
			ColorFrom:   models.Str(r.from),
			ColorTo:     models.Str(r.to),
			IsActive:    true,
			Order:       i + 1,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func seedGallery(tx *gorm.DB) error {
	rows := []struct {
		title, from, via string
		large            bool
	}{
		{"Wedding Decor", "pink-200", "rose-100", true},
		{"Baby Showers", "sky-200", "blue-100", false},
		{"Craft Supplies", "fuchsia-200", "pink-100", false},
		{"Party Setup", "amber-200", "orange-100", false},
		{"Floral Arrangements", "rose-300", "pink-200", true},
		{"Gift Wrap", "stone-200", "stone-100", false},
		{"Table Decor", "emerald-200", "teal-100", false},
	}

	for i, r := range rows {
		err := upsert(tx, &models.GalleryItem{Title: r.title}, &models.GalleryItem{
			Title:        r.title,
			GradientFrom: r.from,
			GradientVia:  r.via,
			GradientTo:   "white",
			IsLarge:      r.large,
			IsActive:     true,
			Order:        i + 1,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func seedTestimonials(tx *gorm.DB) error {
	rows := []struct{ content, author, title string }{
		{
			"Mary's selection is unmatched! I've been a customer for 5 years and always find the perfect ribbons for my wedding invitations business.",
			"Sarah Mitchell", "Wedding Stationery Designer",
		},
		{
			"The quality of laces here is exceptional. I travel 2 hours just to visit this store because nothing else compares.",
			"Emily Chen", "Fashion Designer",
		},
		{
			"Best craft store in the area! Mary always helps me find exactly what I need, even when I don't know what I'm looking for.",
			"Jennifer Adams", "DIY Enthusiast",
		},
	}

	for i, r := range rows {
		err := upsert(tx, &models.Testimonial{AuthorName: r.author}, &models.Testimonial{
			Content:     r.content,
			AuthorName:  r.author,
			AuthorTitle: models.Str(r.title),
			Rating:      5,
			IsActive:    true,
			Order:       i + 1,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func seedSeo(tx *gorm.DB, siteURL string) error {
	lat, lng := 34.0330, -117.9497

	weekday := func(day string) models.OpeningHours {
		return models.OpeningHours{DayOfWeek: day, Opens: "09:00", Closes: "18:00"}
	}

	return upsert(tx, &models.SeoSetting{ID: 1}, &models.SeoSetting{
		ID:                     1,
		MetaTitle:              models.Str(siteName + " | Wholesale & Retail Craft Supplies in La Puente, CA"),
		MetaDescription:        models.Str("Your one-stop shop for wholesale and retail craft supplies in La Puente, CA. Premium ribbons, laces, flowers, baskets & party favors for weddings, quinceañeras, baby showers & all events. Call " + sitePhone + "."),
		MetaKeywords:           models.Str("craft supplies, ribbons, laces, party favors, wedding supplies, quinceañera, baby shower, La Puente, wholesale crafts, retail crafts, flowers, baskets"),
		CanonicalURL:           models.Str(siteURL),
		OGTitle:                models.Str(siteName + " | Premium Craft Supplies"),
		OGDescription:          models.Str("Discover premium ribbons, laces, flowers, baskets & party favors for all your special events. Wholesale & retail in La Puente, CA."),
		OGType:                 models.Str("local_business"),
		OGSiteName:             models.Str(siteName),
		TwitterCard:            models.Str(models.DefaultTwitterCard),
		TwitterTitle:           models.Str(siteName + " | Craft Supplies"),
		TwitterDescription:     models.Str("Premium ribbons, laces & party favors for weddings, quinceañeras & all events. La Puente, CA."),
		BusinessName:           models.Str(siteName),
		BusinessType:           models.Str("Store"),
		BusinessDescription:    models.Str("Wholesale and retail craft supplies store specializing in lace, ribbons, baskets, flowers, and party favors for all events including weddings, quinceañeras, baby showers, and birthday parties."),
		BusinessPhone:          models.Str(sitePhone),
		BusinessAddressStreet:  models.Str("1629 N Hacienda Blvd"),
		BusinessAddressCity:    models.Str("La Puente"),
		BusinessAddressState:   models.Str("CA"),
		BusinessAddressZip:     models.Str("91744"),
		BusinessAddressCountry: models.Str(models.DefaultCountry),
		BusinessLatitude:       &lat,
		BusinessLongitude:      &lng,
		BusinessPriceRange:     models.Str("$$"),
		BusinessHours: []models.OpeningHours{
			weekday("Monday"), weekday("Tuesday"), weekday("Wednesday"), weekday("Thursday"), weekday("Friday"),
			{DayOfWeek: "Saturday", Opens: "10:00", Closes: "17:00"},
		},
		IsActive: true,
	})
}

// upsert overwrites the row matching where with row, creating it when missing.
func upsert[T any](tx *gorm.DB, where, row *T) error {
	var existing T

	err := tx.Where(where).Take(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Create(row).Error
	case err != nil:
		return err
	}

	return tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(row).Error
}
