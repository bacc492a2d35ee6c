package content

import "time"

type Post struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_posts_slug"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:ix_posts_created_at"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Post) TableName() string { return "posts" }

type Review struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	IsPublic  bool      `gorm:"not null;index:ix_reviews_public" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

// PostSitemapEntry is the post projection used by the sitemap.
type PostSitemapEntry struct {
	Slug      string
	UpdatedAt time.Time
}
