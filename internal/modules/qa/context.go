package qa

import (
	"strings"

	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/internal/modules/content"
)

const (
	postExcerptRunes = 600
	usedContextRunes = 1500
)

// BuildContext renders the retrieved records as the model's context block.
// The brands line is omitted when there are no brands; segments are
// separated by a blank line.
func BuildContext(brands []catalog.Brand, products []catalog.Product, posts []content.Post) string {
	segments := make([]string, 0, 1+len(products)+len(posts))

	if len(brands) > 0 {
		names := make([]string, 0, len(brands))
		for _, b := range brands {
			names = append(names, b.Name)
		}
		segments = append(segments, "ДОСТУПНЫЕ БРЕНДЫ: "+strings.Join(names, ", "))
	}

	for _, p := range products {
		line := "ТОВАР: " + p.Name
		if name := p.BrandName(); name != "" {
			line += " (" + name + ")"
		}
		segments = append(segments, line+" — "+p.Description)
	}

	for _, a := range posts {
		segments = append(segments, "СТАТЬЯ: "+a.Title+" — "+truncateRunes(a.Content, postExcerptRunes))
	}

	return strings.Join(segments, "\n\n")
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
