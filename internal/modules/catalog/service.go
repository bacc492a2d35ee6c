package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"fitoapteka.kz/app/internal/shared/slug"
)

// Store is the persistence surface the catalog service needs; *Repo
// implements it.
type Store interface {
	ActiveBrands(ctx context.Context, limit int) ([]Brand, error)
	FindProducts(ctx context.Context, f Filter) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	Popular(ctx context.Context, limit int) ([]Product, error)
	Newest(ctx context.Context, limit int) ([]Product, error)
}

type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(st Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger, now: time.Now}
}

// SetClock overrides the time source used by the freshness filter.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Item is a product with its normalised variants.
type Item struct {
	Product  Product
	Variants []Variant
}

type Result struct {
	Items    []Item
	Brands   []Brand
	Selected *Brand // nil = all brands
	Count    int
}

// Catalog runs the shop query. An unknown brand slug is not an error: the
// result is the same as for all brands. All matching rows are returned.
func (s *Service) Catalog(ctx context.Context, q Query) (Result, error) {
	brands, err := s.store.ActiveBrands(ctx, 0)
	if err != nil {
		return Result{}, err
	}
	fillSlugs(brands)

	var selected *Brand
	if q.BrandSlug != "" {
		for i := range brands {
			if brands[i].Slug == q.BrandSlug {
				selected = &brands[i]
				break
			}
		}
	}

	f := Filter{InStock: q.InStock, Order: q.Order}
	if selected != nil {
		f.BrandID = selected.ID
	}
	if q.Fresh {
		f.FreshSince = s.now().Add(-FreshWindow)
	}

	products, err := s.store.FindProducts(ctx, f)
	if err != nil {
		return Result{}, err
	}

	items := toItems(products)
	return Result{Items: items, Brands: brands, Selected: selected, Count: len(items)}, nil
}

// Product loads one product; ErrProductNotFound when missing.
func (s *Service) Product(ctx context.Context, id string) (Item, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return Item{}, err
	}
	return Item{Product: p, Variants: NormalizeVariants(p.Variants)}, nil
}

// IsFresh reports whether p was created within FreshWindow of now.
func (s *Service) IsFresh(p Product) bool {
	return s.now().Sub(p.CreatedAt) <= FreshWindow
}

func toItems(ps []Product) []Item {
	items := make([]Item, 0, len(ps))
	for _, p := range ps {
		items = append(items, Item{Product: p, Variants: NormalizeVariants(p.Variants)})
	}
	return items
}

// fillSlugs derives slugs for brands stored without one, suffixing -2, -3...
// so no two brands in the list share a slug.
func fillSlugs(brands []Brand) {
	taken := make(map[string]bool, len(brands))
	for _, b := range brands {
		if b.Slug != "" {
			taken[b.Slug] = true
		}
	}
	for i := range brands {
		if brands[i].Slug != "" {
			continue
		}
		base := slug.FromName(brands[i].Name)
		candidate := base
		for n := 2; taken[candidate]; n++ {
			candidate = base + "-" + strconv.Itoa(n)
		}
		taken[candidate] = true
		brands[i].Slug = candidate
	}
}
