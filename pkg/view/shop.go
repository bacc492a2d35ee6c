package view

type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

type Meta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Canonical   string   `json:"canonical"`
	Robots      Robots   `json:"robots"`
}

type BrandLink struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type SortLink struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type ShopFilters struct {
	Brand     string `json:"brand,omitempty"`
	Sort      string `json:"sort,omitempty"`
	Favorites bool   `json:"fav"`
	InStock   bool   `json:"instock"`
}

type ShopPage struct {
	Meta     Meta          `json:"meta"`
	Filters  ShopFilters   `json:"filters"`
	Brands   []BrandLink   `json:"brands"`
	Sorts    []SortLink    `json:"sorts"`
	Selected *BrandLink    `json:"selected_brand"`
	Count    int           `json:"count"`
	Products []ProductCard `json:"products"`
}

type Review struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type HomePage struct {
	Popular []ProductCard `json:"popular"`
	Newest  []ProductCard `json:"newest"`
	Reviews []Review      `json:"reviews"`
}
