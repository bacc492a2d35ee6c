package theme

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// Find loads the settings for siteKey, falling back to LegacyKey. Returns
// (nil, nil) when neither row exists.
func (r *Repo) Find(ctx context.Context, siteKey string) (*Settings, error) {
	s, err := r.get(ctx, siteKey)
	if err != nil || s != nil || siteKey == LegacyKey {
		return s, err
	}
	return r.get(ctx, LegacyKey)
}

func (r *Repo) get(ctx context.Context, id string) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
