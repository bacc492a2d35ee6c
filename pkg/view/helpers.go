package view

import (
	"net/url"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "₸"

var ruPrinter = message.NewPrinter(language.Russian)

// FormatPrice renders a whole-tenge amount the way the storefront shows it:
// Russian digit grouping followed by the tenge sign, e.g. "12 990 ₸".
func FormatPrice(amount int) string {
	return ruPrinter.Sprintf("%d", amount) + " " + currencySymbol
}

// ShopHref builds a catalog link keeping only meaningful parameters.
func ShopHref(brand, sort, fav, instock string) string {
	q := url.Values{}
	if brand != "" {
		q.Set("brand", brand)
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	if fav == "1" {
		q.Set("fav", "1")
	}
	if instock == "1" {
		q.Set("instock", "1")
	}
	if len(q) == 0 {
		return "/shop"
	}
	return "/shop?" + q.Encode()
}
