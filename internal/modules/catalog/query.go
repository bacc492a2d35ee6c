package catalog

import (
	"strings"
	"time"
)

type Order string

const (
	OrderRecent    Order = ""
	OrderPriceAsc  Order = "price_asc"
	OrderPriceDesc Order = "price_desc"
)

// FreshWindow is how long a product counts as new after creation.
const FreshWindow = 14 * 24 * time.Hour

// Query is the parsed form of the catalog page parameters.
type Query struct {
	BrandSlug string
	Fresh     bool // sort=new: is_new OR created within FreshWindow
	Order     Order
	InStock   bool
	Favorites bool // fav=1, applied client-side
	// Sort is the raw sort value used for canonical links.
	Sort string
	// NoIndex is set when any of sort, fav or instock is present: filtered
	// views must not be indexed by search engines.
	NoIndex bool
}

// ParseQuery reads the shop parameters. sort may list several keys
// separated by commas ("new,price_asc"); "new" turns on the freshness
// filter and the last price key wins.
func ParseQuery(brand, sort, fav, instock string) Query {
	fav, instock = strings.TrimSpace(fav), strings.TrimSpace(instock)
	q := Query{
		BrandSlug: strings.TrimSpace(brand),
		Sort:      strings.TrimSpace(sort),
		Favorites: fav == "1",
		InStock:   instock == "1",
	}
	q.NoIndex = q.Sort != "" || fav != "" || instock != ""
	for _, key := range strings.Split(q.Sort, ",") {
		switch strings.TrimSpace(key) {
		case "new":
			q.Fresh = true
		case string(OrderPriceAsc):
			q.Order = OrderPriceAsc
		case string(OrderPriceDesc):
			q.Order = OrderPriceDesc
		}
	}
	return q
}

// Filter is the store-level product filter built from a Query.
type Filter struct {
	BrandID    string    // "" = all brands
	FreshSince time.Time // zero = no freshness filter
	InStock    bool
	Order      Order
}
