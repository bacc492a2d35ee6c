package content

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&Post{}, &Review{}))
	return db
}

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSearchPosts(t *testing.T) {
	db := newTestDB(t)
	posts := []Post{
		{ID: "p1", Title: "Sunscreen basics", Slug: "sunscreen", Content: "Use SPF daily", CreatedAt: base, UpdatedAt: base},
		{ID: "p2", Title: "Night routine", Slug: "night", Content: "Retinol and sunscreen in the morning", CreatedAt: base.Add(time.Hour), UpdatedAt: base},
		{ID: "p3", Title: "Herbal teas", Slug: "teas", Content: "Chamomile", CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base},
		{ID: "p4", Title: "100% natural", Slug: "natural", Content: "Nothing else", CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base},
	}
	require.NoError(t, db.Create(&posts).Error)
	r := NewRepo(db)
	ctx := context.Background()

	got, err := r.SearchPosts(ctx, []string{"SUNSCREEN"}, 8)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID, "newest first")
	assert.Equal(t, "p1", got[1].ID)

	got, err = r.SearchPosts(ctx, []string{"%"}, 8)
	require.NoError(t, err)
	require.Len(t, got, 1, "wildcards are matched literally")
	assert.Equal(t, "p4", got[0].ID)

	got, err = r.SearchPosts(ctx, nil, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2, "no terms means unfiltered, limited")
}

func TestPublicReviews(t *testing.T) {
	db := newTestDB(t)
	reviews := []Review{
		{ID: "r1", Name: "Aigerim", Rating: 5, Text: "Great", IsPublic: true, CreatedAt: base},
		{ID: "r2", Name: "Dana", Rating: 9, Text: "Wow", IsPublic: true, CreatedAt: base.Add(time.Hour)},
		{ID: "r3", Name: "Hidden", Rating: 1, Text: "Spam", IsPublic: false, CreatedAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, db.Create(&reviews).Error)

	got, err := NewRepo(db).PublicReviews(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, 5, got[0].Rating)
}

func TestSitemapEntries(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&Post{ID: "p1", Title: "A", Slug: "a", Content: "x", CreatedAt: base, UpdatedAt: base.Add(time.Hour)}).Error)

	got, err := NewRepo(db).SitemapEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Slug)
	assert.True(t, got[0].UpdatedAt.Equal(base.Add(time.Hour)))
}
