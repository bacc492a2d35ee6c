package catalog

// Selection is what a product card shows for the chosen variant.
type Selection struct {
	VariantID string // "" when the product has no variants
	Price     int
	Stock     int
	Image     string
	InStock   bool
}

// DefaultVariant is the first variant in stock, else the first one.
func DefaultVariant(vs []Variant) (Variant, bool) {
	if len(vs) == 0 {
		return Variant{}, false
	}
	for _, v := range vs {
		if v.Stock > 0 {
			return v, true
		}
	}
	return vs[0], true
}

// Select resolves the displayed price, stock and image for variantID.
// An unknown or empty id resolves to the default variant; an empty list
// resolves to the product's own values. Out-of-stock variants remain
// selectable.
func Select(p Product, vs []Variant, variantID string) Selection {
	v, ok := findVariant(vs, variantID)
	if !ok {
		v, ok = DefaultVariant(vs)
	}
	if !ok {
		stock := max(p.Stock, 0)
		return Selection{Price: p.Price, Stock: stock, Image: p.Image, InStock: stock > 0}
	}

	img := p.Image
	if v.Image != "" {
		img = v.Image
	}
	return Selection{
		VariantID: v.ID,
		Price:     v.Price,
		Stock:     v.Stock,
		Image:     img,
		InStock:   v.Stock > 0,
	}
}

func findVariant(vs []Variant, id string) (Variant, bool) {
	if id == "" {
		return Variant{}, false
	}
	for _, v := range vs {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
