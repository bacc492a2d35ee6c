package theme

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const umamiScriptSrc = "https://cloud.umami.is/script.js"

type Finder interface {
	Find(ctx context.Context, siteKey string) (*Settings, error)
}

type Banner struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

type Analytics struct {
	WebsiteID string `json:"website_id"`
	ScriptSrc string `json:"script_src"`
}

type Layout struct {
	Brand         string     `json:"brand"`
	BackgroundURL string     `json:"background_url,omitempty"`
	Banner        *Banner    `json:"banner,omitempty"`
	Analytics     *Analytics `json:"analytics,omitempty"`
}

type Service struct {
	finder  Finder
	siteKey string
	brand   string
	umamiID string
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(f Finder, siteKey, brand, umamiID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		finder:  f,
		siteKey: siteKey,
		brand:   brand,
		umamiID: strings.TrimSpace(umamiID),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Layout never fails: a store error is logged and the layout is returned
// without theme.
func (s *Service) Layout(ctx context.Context) Layout {
	out := Layout{Brand: s.brand}
	if s.umamiID != "" {
		out.Analytics = &Analytics{WebsiteID: s.umamiID, ScriptSrc: umamiScriptSrc}
	}

	st, err := s.finder.Find(ctx, s.siteKey)
	if err != nil {
		s.logger.WarnContext(ctx, "theme settings unavailable", "site_key", s.siteKey, "err", err)
		return out
	}
	if st == nil || !st.ActiveNow(s.now()) {
		return out
	}

	out.BackgroundURL = strings.TrimSpace(st.BackgroundURL)
	if text := strings.TrimSpace(st.BannerText); st.BannerEnabled && text != "" {
		out.Banner = &Banner{Text: text, Href: strings.TrimSpace(st.BannerHref)}
	}
	return out
}
