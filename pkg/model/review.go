package model

import "time"

// Review is a cached third-party review, refreshed whenever a live fetch for
// the same restaurant succeeds.
type Review struct {
	ID           uint        `gorm:"primaryKey"                  json:"-"`
	RestaurantID *uint       `gorm:"index"                       json:"-"`
	Restaurant   *Restaurant `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Source       string      `gorm:"not null"                    json:"source"`
	Author       string      `json:"author"`
	AuthorPhoto  *string     `json:"authorPhoto"`
	Rating       float64     `json:"rating"`
	Text         string      `json:"text"`
	Date         string      `json:"date"`
	CreatedAt    time.Time   `json:"-"`
}

type ReviewSummary struct {
	Source      string  `json:"source"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}
