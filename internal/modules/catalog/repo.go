package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitoapteka.kz/app/internal/store"
)

// productSearchColumns are matched by SearchProducts; brands is LEFT JOINed.
var productSearchColumns = []string{
	"products.name",
	"products.description",
	"products.category",
	"brands.name",
}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ActiveBrands lists active brands by sort order then name. limit <= 0
// means no limit.
func (r *Repo) ActiveBrands(ctx context.Context, limit int) ([]Brand, error) {
	var items []Brand
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) FindProducts(ctx context.Context, f Filter) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{}).Preload("Brand")

	if f.BrandID != "" {
		q = q.Where("products.brand_id = ?", f.BrandID)
	}
	if !f.FreshSince.IsZero() {
		q = q.Where("(products.is_new = ? OR products.created_at >= ?)", true, f.FreshSince)
	}
	if f.InStock {
		q = q.Where("products.stock > ?", 0)
	}

	switch f.Order {
	case OrderPriceAsc, OrderPriceDesc:
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Table: "products", Name: "price"},
			Desc:   f.Order == OrderPriceDesc,
		})
	}
	q = q.Order("products.created_at DESC").Order("products.id ASC")

	var items []Product
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) GetProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Preload("Brand").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

// Popular returns products flagged popular, newest first.
func (r *Repo) Popular(ctx context.Context, limit int) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("is_popular = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repo) Newest(ctx context.Context, limit int) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// SearchProducts returns products where any term is a case-insensitive
// substring of name, description, category or brand name. No terms means
// no filter. Popular products first, then newest.
func (r *Repo) SearchProducts(ctx context.Context, terms []string, limit int) ([]Product, error) {
	q := r.db.WithContext(ctx).
		Model(&Product{}).
		Select("products.*").
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Preload("Brand")

	if cond, args := store.AnyContains(productSearchColumns, terms); cond != "" {
		q = q.Where(cond, args...)
	}

	var items []Product
	err := q.
		Order("products.is_popular DESC").
		Order("products.created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repo) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	var items []SitemapEntry
	err := r.db.WithContext(ctx).
		Model(&Product{}).
		Select("id", "updated_at").
		Order("created_at DESC").
		Scan(&items).Error
	return items, err
}
