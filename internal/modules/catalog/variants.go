package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Variant is a purchasable sub-option of a product (size, scent...).
type Variant struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
	SKU   string `json:"sku,omitempty"`
	Image string `json:"image,omitempty"`
}

// NormalizeVariants decodes the stored JSON list leniently. Entries without
// an id or label, and entries whose price or stock is not a finite number,
// are dropped; numbers are truncated and clamped at zero. The result is
// never nil.
func NormalizeVariants(raw []byte) []Variant {
	out := []Variant{}
	if len(raw) == 0 {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}

	for _, item := range items {
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}

		id, _ := obj["id"].(string)
		label, _ := obj["label"].(string)
		if id == "" || label == "" {
			continue
		}

		price, ok := numberField(obj, "price")
		if !ok {
			continue
		}
		stock, ok := numberField(obj, "stock")
		if !ok {
			continue
		}

		v := Variant{
			ID:    id,
			Label: label,
			Price: nonNegInt(price),
			Stock: nonNegInt(stock),
		}
		if sku, ok := obj["sku"].(string); ok {
			v.SKU = sku
		}
		if img, ok := obj["image"].(string); ok {
			v.Image = strings.TrimSpace(img)
		}
		out = append(out, v)
	}
	return out
}

// numberField accepts JSON numbers, numeric strings, booleans (true=1) and
// null (0). A missing key is not a number.
func numberField(obj map[string]any, key string) (float64, bool) {
	v, present := obj[key]
	if !present {
		return 0, false
	}
	switch x := v.(type) {
	case nil:
		return 0, true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func nonNegInt(f float64) int {
	t := math.Trunc(f)
	if t <= 0 {
		return 0
	}
	if t > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(t)
}
