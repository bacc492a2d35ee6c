package content

import (
	"context"

	"gorm.io/gorm"

	"fitoapteka.kz/app/internal/store"
)

var postSearchColumns = []string{"title", "content"}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// SearchPosts returns posts where any term is a case-insensitive substring
// of the title or content, newest first. No terms means no filter.
func (r *Repo) SearchPosts(ctx context.Context, terms []string, limit int) ([]Post, error) {
	q := r.db.WithContext(ctx).Model(&Post{})
	if cond, args := store.AnyContains(postSearchColumns, terms); cond != "" {
		q = q.Where(cond, args...)
	}

	var items []Post
	err := q.Order("created_at DESC").Order("id ASC").Limit(limit).Find(&items).Error
	return items, err
}

// PublicReviews lists approved reviews, newest first. Ratings outside 1..5
// are clamped.
func (r *Repo) PublicReviews(ctx context.Context, limit int) ([]Review, error) {
	var items []Review
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	for i := range items {
		items[i].Rating = min(max(items[i].Rating, 1), 5)
	}
	return items, err
}

func (r *Repo) SitemapEntries(ctx context.Context) ([]PostSitemapEntry, error) {
	var items []PostSitemapEntry
	err := r.db.WithContext(ctx).
		Model(&Post{}).
		Select("slug", "updated_at").
		Order("created_at DESC").
		Scan(&items).Error
	return items, err
}
