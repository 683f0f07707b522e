package models

import (
	"fmt"
	"time"
)

// HeroSection is the banner block at the top of the home page.
type HeroSection struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	BadgeText           *string   `gorm:"size:255" json:"badge_text"`
	TitleLine1          string    `gorm:"size:255" json:"title_line1"`
	TitleLine2          *string   `gorm:"size:255" json:"title_line2"`
	Subtitle            *string   `gorm:"type:text" json:"subtitle"`
	PrimaryButtonText   *string   `gorm:"size:255" json:"primary_button_text"`
	PrimaryButtonLink   *string   `gorm:"size:255" json:"primary_button_link"`
	SecondaryButtonText *string   `gorm:"size:255" json:"secondary_button_text"`
	SecondaryButtonLink *string   `gorm:"size:255" json:"secondary_button_link"`
	BackgroundImage     *string   `gorm:"size:255" json:"background_image"`
	IsActive            bool      `gorm:"index" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AboutSection is the "our story" block.
type AboutSection struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	BadgeText           *string   `gorm:"size:255" json:"badge_text"`
	TitleLine1          string    `gorm:"size:255" json:"title_line1"`
	TitleLine2          *string   `gorm:"size:255" json:"title_line2"`
	LeadParagraph       *string   `gorm:"type:text" json:"lead_paragraph"`
	Content             *string   `gorm:"type:text" json:"content"`
	Image               *string   `gorm:"size:255" json:"image"`
	StatNumber          *string   `gorm:"size:32" json:"stat_number"`
	StatLabel           *string   `gorm:"size:255" json:"stat_label"`
	Feature1Title       *string   `gorm:"column:feature1_title;size:255" json:"feature1_title"`
	Feature1Description *string   `gorm:"column:feature1_description;size:255" json:"feature1_description"`
	Feature2Title       *string   `gorm:"column:feature2_title;size:255" json:"feature2_title"`
	Feature2Description *string   `gorm:"column:feature2_description;size:255" json:"feature2_description"`
	IsActive            bool      `gorm:"index" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ProductCategory is one tile of the products grid.
type ProductCategory struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Icon        *string   `gorm:"size:32" json:"icon"`
	Image       *string   `gorm:"size:255" json:"image"`
	ColorFrom   *string   `gorm:"size:64" json:"color_from"`
	ColorTo     *string   `gorm:"size:64" json:"color_to"`
	IsActive    bool      `gorm:"index" json:"is_active"`
	Order       int       `gorm:"default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryItem is one photo of the gallery.
type GalleryItem struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Image        *string   `gorm:"size:255" json:"image"`
	GradientFrom string    `gorm:"size:64" json:"gradient_from"`
	GradientVia  string    `gorm:"size:64" json:"gradient_via"`
	GradientTo   string    `gorm:"size:64" json:"gradient_to"`
	IsLarge      bool      `gorm:"default:false" json:"is_large"`
	IsActive     bool      `gorm:"index" json:"is_active"`
	Order        int       `gorm:"default:0" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GradientClass returns the css classes of the placeholder gradient.
func (g GalleryItem) GradientClass() string {
	return fmt.Sprintf("bg-gradient-to-br from-%s via-%s to-%s", g.GradientFrom, g.GradientVia, g.GradientTo)
}

// Testimonial is a customer review.
type Testimonial struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorName  string    `gorm:"size:255;not null" json:"author_name"`
	AuthorTitle *string   `gorm:"size:255" json:"author_title"`
	AuthorImage *string   `gorm:"size:255" json:"author_image"`
	Rating      int       `gorm:"default:5" json:"rating"`
	IsActive    bool      `gorm:"index" json:"is_active"`
	Order       int       `gorm:"default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
