package view

import "time"

type VariantChip struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Price     int    `json:"price"`
	PriceText string `json:"price_text"`
	Stock     int    `json:"stock"`
	SKU       string `json:"sku,omitempty"`
	Image     string `json:"image,omitempty"`
	Active    bool   `json:"active"`
	Disabled  bool   `json:"disabled"` // out of stock; still selectable
}

type Badges struct {
	Popular    bool `json:"popular"`
	New        bool `json:"new"`
	OutOfStock bool `json:"out_of_stock"`
}

type ProductCard struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Brand       string        `json:"brand,omitempty"`
	Category    string        `json:"category"`
	Subtitle    string        `json:"subtitle"` // brand name, else category
	Description string        `json:"description,omitempty"`
	Href        string        `json:"href"`
	Image       string        `json:"image"`
	Price       int           `json:"price"`
	PriceText   string        `json:"price_text"`
	Stock       int           `json:"stock"`
	InStock     bool          `json:"in_stock"`
	StockText   string        `json:"stock_text"`
	VariantID   string        `json:"variant_id,omitempty"`
	Variants    []VariantChip `json:"variants"`
	Badges      Badges        `json:"badges"`
	CreatedAt   time.Time     `json:"created_at"`
}
