package theme

import "time"

// LegacyKey is the settings row used before per-site keys existed.
const LegacyKey = "default"

type Settings struct {
	ID              string `gorm:"type:varchar(64);primaryKey"`
	BackgroundURL   string `gorm:"type:varchar(512);not null"`
	BannerEnabled   bool   `gorm:"not null"`
	BannerText      string `gorm:"type:varchar(512);not null"`
	BannerHref      string `gorm:"type:varchar(512);not null"`
	ScheduleEnabled bool   `gorm:"not null"`
	ScheduleStart   *time.Time
	ScheduleEnd     *time.Time
	UpdatedAt       time.Time `gorm:"not null"`
}

func (Settings) TableName() string { return "theme_settings" }

// ActiveNow reports whether the theme applies at t. Without a schedule it is
// always active; otherwise t must not be before start nor after end.
func (s Settings) ActiveNow(t time.Time) bool {
	if !s.ScheduleEnabled {
		return true
	}
	if s.ScheduleStart != nil && t.Before(*s.ScheduleStart) {
		return false
	}
	if s.ScheduleEnd != nil && t.After(*s.ScheduleEnd) {
		return false
	}
	return true
}
