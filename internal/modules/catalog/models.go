package catalog

import (
	"time"

	"gorm.io/datatypes"
)

type Brand struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(128);not null"`
	Slug      string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_brands_slug"`
	IsActive  bool      `gorm:"not null"`
	SortOrder int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Brand) TableName() string { return "brands" }

type Product struct {
	ID          string  `gorm:"type:char(36);primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:varchar(128);not null"`
	Image       string  `gorm:"type:varchar(512);not null"`
	Price       int     `gorm:"not null"`
	Stock       int     `gorm:"not null"`
	IsPopular   bool    `gorm:"not null"`
	IsNew       bool    `gorm:"not null"`
	BrandID     *string `gorm:"type:char(36);index:ix_products_brand_id"`
	Brand       *Brand  `gorm:"foreignKey:BrandID"`
	// Variants is a JSON array edited by the admin surface; see NormalizeVariants.
	Variants  datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time      `gorm:"not null;index:ix_products_created_at"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// BrandName returns the brand's name or "" when the product has none.
func (p Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}
	return p.Brand.Name
}

// SitemapEntry is the minimal product projection used by the sitemap.
type SitemapEntry struct {
	ID        string
	UpdatedAt time.Time
}
