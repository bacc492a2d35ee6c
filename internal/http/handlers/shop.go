package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/internal/shared/apperr"
	"fitoapteka.kz/app/pkg/view"
)

var baseKeywords = []string{"каталог косметики", "купить косметику", "бренды косметики"}

type ShopHandler struct {
	catalog   *catalog.Service
	reviews   catalog.ReviewLister
	siteBrand string
	baseURL   string
}

func NewShopHandler(svc *catalog.Service, reviews catalog.ReviewLister, siteBrand, baseURL string) *ShopHandler {
	return &ShopHandler{
		catalog:   svc,
		reviews:   reviews,
		siteBrand: siteBrand,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// List: GET /api/shop?brand=&sort=&fav=&instock=
func (h *ShopHandler) List(c *gin.Context) {
	rawFav, rawInStock := c.Query("fav"), c.Query("instock")
	q := catalog.ParseQuery(c.Query("brand"), c.Query("sort"), rawFav, rawInStock)

	res, err := h.catalog.Catalog(c.Request.Context(), q)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	fav, instock := strings.TrimSpace(rawFav), strings.TrimSpace(rawInStock)
	page := view.ShopPage{
		Meta: h.shopMeta(q, res),
		Filters: view.ShopFilters{
			Brand:     q.BrandSlug,
			Sort:      q.Sort,
			Favorites: q.Favorites,
			InStock:   q.InStock,
		},
		Brands:   brandLinks(res, q, fav, instock),
		Sorts:    sortLinks(q, fav, instock),
		Count:    res.Count,
		Products: h.cards(res.Items),
	}
	if res.Selected != nil {
		page.Selected = &view.BrandLink{
			Name:   res.Selected.Name,
			Slug:   res.Selected.Slug,
			Href:   view.ShopHref(res.Selected.Slug, q.Sort, fav, instock),
			Active: true,
		}
	}

	if !page.Meta.Robots.Index {
		c.Header("X-Robots-Tag", "noindex, follow")
	}
	c.JSON(http.StatusOK, page)
}

// Detail: GET /api/shop/:id?variant=
func (h *ShopHandler) Detail(c *gin.Context) {
	item, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("not_found"))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	card := productCard(item, h.fresh(item.Product), c.Query("variant"))
	card.Description = item.Product.Description
	c.JSON(http.StatusOK, card)
}

// Home: GET /api/home
func (h *ShopHandler) Home(c *gin.Context) {
	home := h.catalog.Home(c.Request.Context(), h.reviews)

	reviews := make([]view.Review, 0, len(home.Reviews))
	for _, r := range home.Reviews {
		reviews = append(reviews, view.Review{ID: r.ID, Name: r.Name, Rating: r.Rating, Text: r.Text})
	}

	c.JSON(http.StatusOK, view.HomePage{
		Popular: h.cards(home.Popular),
		Newest:  h.cards(home.Newest),
		Reviews: reviews,
	})
}

func (h *ShopHandler) shopMeta(q catalog.Query, res catalog.Result) view.Meta {
	keywords := append([]string{}, baseKeywords...)
	for _, b := range res.Brands {
		keywords = append(keywords, b.Name)
	}

	m := view.Meta{
		Title:       "Каталог – " + h.siteBrand,
		Description: "Каталог " + h.siteBrand + ": очищающие гели, пенки, сыворотки, кремы и другие средства для ухода за кожей.",
		Keywords:    keywords,
		Canonical:   h.baseURL + "/shop",
		Robots:      view.Robots{Index: !q.NoIndex, Follow: true},
	}
	if b := res.Selected; b != nil {
		m.Title = b.Name + " — каталог " + h.siteBrand
		m.Description = "Купить " + b.Name + " в " + h.siteBrand + ": актуальные цены, наличие и доставка по Казахстану."
		m.Canonical = h.baseURL + "/shop?brand=" + url.QueryEscape(b.Slug)
	}
	return m
}

func brandLinks(res catalog.Result, q catalog.Query, fav, instock string) []view.BrandLink {
	links := make([]view.BrandLink, 0, len(res.Brands)+1)
	links = append(links, view.BrandLink{
		Name:   "Все",
		Href:   view.ShopHref("", q.Sort, fav, instock),
		Active: q.BrandSlug == "",
	})
	for _, b := range res.Brands {
		links = append(links, view.BrandLink{
			Name:   b.Name,
			Slug:   b.Slug,
			Href:   view.ShopHref(b.Slug, q.Sort, fav, instock),
			Active: b.Slug == q.BrandSlug,
		})
	}
	return links
}

// sortLinks: "new" toggles and keeps the price key; a price key replaces
// the other one and keeps "new".
func sortLinks(q catalog.Query, fav, instock string) []view.SortLink {
	price := string(q.Order)
	join := func(fresh bool, price string) string {
		var keys []string
		if fresh {
			keys = append(keys, "new")
		}
		if price != "" {
			keys = append(keys, price)
		}
		return strings.Join(keys, ",")
	}

	return []view.SortLink{
		{
			Value:  "new",
			Label:  "Новинки",
			Href:   view.ShopHref(q.BrandSlug, join(!q.Fresh, price), fav, instock),
			Active: q.Fresh,
		},
		{
			Value:  string(catalog.OrderPriceAsc),
			Label:  "Цена ↑",
			Href:   view.ShopHref(q.BrandSlug, join(q.Fresh, string(catalog.OrderPriceAsc)), fav, instock),
			Active: q.Order == catalog.OrderPriceAsc,
		},
		{
			Value:  string(catalog.OrderPriceDesc),
			Label:  "Цена ↓",
			Href:   view.ShopHref(q.BrandSlug, join(q.Fresh, string(catalog.OrderPriceDesc)), fav, instock),
			Active: q.Order == catalog.OrderPriceDesc,
		},
	}
}
