package handlers

import (
	"strconv"

	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/pkg/view"
)

// productCard renders item for the chosen variant ("" = default variant).
func productCard(item catalog.Item, fresh bool, variantID string) view.ProductCard {
	p := item.Product
	sel := catalog.Select(p, item.Variants, variantID)

	chips := make([]view.VariantChip, 0, len(item.Variants))
	for _, v := range item.Variants {
		chips = append(chips, view.VariantChip{
			ID:        v.ID,
			Label:     v.Label,
			Price:     v.Price,
			PriceText: view.FormatPrice(v.Price),
			Stock:     v.Stock,
			SKU:       v.SKU,
			Image:     v.Image,
			Active:    v.ID == sel.VariantID,
			Disabled:  v.Stock <= 0,
		})
	}

	subtitle := p.BrandName()
	if subtitle == "" {
		subtitle = p.Category
	}

	return view.ProductCard{
		ID:        p.ID,
		Name:      p.Name,
		Brand:     p.BrandName(),
		Category:  p.Category,
		Subtitle:  subtitle,
		Href:      "/shop/" + p.ID,
		Image:     sel.Image,
		Price:     sel.Price,
		PriceText: view.FormatPrice(sel.Price),
		Stock:     sel.Stock,
		InStock:   sel.InStock,
		StockText: stockText(sel),
		VariantID: sel.VariantID,
		Variants:  chips,
		Badges: view.Badges{
			Popular:    p.IsPopular,
			New:        fresh,
			OutOfStock: !sel.InStock,
		},
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func stockText(sel catalog.Selection) string {
	if sel.InStock {
		return "В наличии: " + strconv.Itoa(sel.Stock)
	}
	return "Под заказ / нет"
}

func (h *ShopHandler) cards(items []catalog.Item) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, it := range items {
		out = append(out, productCard(it, h.fresh(it.Product), ""))
	}
	return out
}

func (h *ShopHandler) fresh(p catalog.Product) bool {
	return p.IsNew || h.catalog.IsFresh(p)
}
