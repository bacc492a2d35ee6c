package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fitoapteka.kz/app/internal/modules/content"
)

const (
	homePopularLimit = 8
	homeNewestLimit  = 8
	homeReviewsLimit = 6
)

// ReviewLister provides the public testimonials shown on the home page.
type ReviewLister interface {
	PublicReviews(ctx context.Context, limit int) ([]content.Review, error)
}

type Home struct {
	Popular []Item
	Newest  []Item
	Reviews []content.Review
}

// Home loads the three home page sections in parallel. A failing section is
// logged and left empty; the page never fails as a whole.
func (s *Service) Home(ctx context.Context, reviews ReviewLister) Home {
	var h Home
	var g errgroup.Group

	g.Go(func() error {
		ps, err := s.store.Popular(ctx, homePopularLimit)
		if err != nil {
			s.logger.WarnContext(ctx, "home section failed", "section", "popular", "err", err)
			return nil
		}
		h.Popular = toItems(ps)
		return nil
	})
	g.Go(func() error {
		ps, err := s.store.Newest(ctx, homeNewestLimit)
		if err != nil {
			s.logger.WarnContext(ctx, "home section failed", "section", "newest", "err", err)
			return nil
		}
		h.Newest = toItems(ps)
		return nil
	})
	g.Go(func() error {
		rs, err := reviews.PublicReviews(ctx, homeReviewsLimit)
		if err != nil {
			s.logger.WarnContext(ctx, "home section failed", "section", "reviews", "err", err)
			return nil
		}
		h.Reviews = rs
		return nil
	})
	_ = g.Wait()

	if h.Popular == nil {
		h.Popular = []Item{}
	}
	if h.Newest == nil {
		h.Newest = []Item{}
	}
	if h.Reviews == nil {
		h.Reviews = []content.Review{}
	}
	return h
}
