package sitemap

import (
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/internal/modules/content"
	"fitoapteka.kz/app/internal/store"
)

const (
	xmlns      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	changeFreq = "weekly"
)

var staticPaths = []string{"", "/shop", "/blog", "/about", "/contacts", "/ask"}

type ProductLister interface {
	SitemapEntries(ctx context.Context) ([]catalog.SitemapEntry, error)
}

type PostLister interface {
	SitemapEntries(ctx context.Context) ([]content.PostSitemapEntry, error)
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type Builder struct {
	products ProductLister
	posts    PostLister
	baseURL  string
	logger   *slog.Logger
	now      func() time.Time
}

func NewBuilder(products ProductLister, posts PostLister, baseURL string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		products: products,
		posts:    posts,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		now:      time.Now,
	}
}

func (b *Builder) SetClock(now func() time.Time) { b.now = now }

// Build lists the static pages, every product and every post. When the
// store is unreachable only the static pages are returned.
func (b *Builder) Build(ctx context.Context) (URLSet, error) {
	now := b.now()
	set := URLSet{Xmlns: xmlns}
	for _, p := range staticPaths {
		prio := 0.7
		if p == "" {
			prio = 1.0
		}
		loc := b.baseURL + p
		if p == "" {
			loc += "/"
		}
		set.URLs = append(set.URLs, b.entry(loc, now, prio))
	}

	products, err := b.products.SitemapEntries(ctx)
	if err == nil {
		var posts []content.PostSitemapEntry
		posts, err = b.posts.SitemapEntries(ctx)
		if err == nil {
			for _, p := range products {
				set.URLs = append(set.URLs, b.entry(b.baseURL+"/shop/"+p.ID, orNow(p.UpdatedAt, now), 0.8))
			}
			for _, p := range posts {
				set.URLs = append(set.URLs, b.entry(b.baseURL+"/blog/"+p.Slug, orNow(p.UpdatedAt, now), 0.6))
			}
			return set, nil
		}
	}

	if store.IsUnavailable(err) {
		b.logger.WarnContext(ctx, "sitemap dynamic routes skipped: database is unavailable", "err", err)
		return set, nil
	}
	return URLSet{}, err
}

func (b *Builder) entry(loc string, mod time.Time, prio float64) URL {
	return URL{
		Loc:        loc,
		LastMod:    mod.UTC().Format(time.RFC3339),
		ChangeFreq: changeFreq,
		Priority:   strconv.FormatFloat(prio, 'f', 1, 64),
	}
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// Write encodes set as an XML document.
func Write(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}
