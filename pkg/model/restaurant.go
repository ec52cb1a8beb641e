package model

import (
	"slices"
	"time"
)

const DefaultPrice = "$$"

var PriceTiers = []string{"$", "$$", "$$$", "$$$$"}

func IsPriceTier(price string) bool {
	return slices.Contains(PriceTiers, price)
}

// Restaurant is a curated place to eat. The region code is stored in the
// county column and serialized as "county" for compatibility with existing
// clients.
type Restaurant struct {
	ID            uint      `gorm:"primaryKey"                   json:"id"`
	Name          string    `gorm:"not null"                     json:"name"`
	Region        string    `gorm:"column:county;not null;index" json:"county"`
	Area          string    `gorm:"not null;index"               json:"area"`
	Cuisine       string    `gorm:"not null;index"               json:"cuisine"`
	Price         string    `gorm:"not null;default:'$$'"        json:"price"`
	PlaceID       *string   `json:"place_id"`
	GoogleMapsURL *string   `json:"google_maps_url"`
	IsFavorite    bool      `gorm:"not null;default:false;index" json:"is_favorite"`
	CreatedAt     time.Time `json:"created_at"`
}

// RestaurantFilter narrows a restaurant listing. Empty dimensions do not
// constrain; values within one dimension are alternatives.
type RestaurantFilter struct {
	Regions       []string
	Areas         []string
	Cuisines      []string
	Prices        []string
	FavoritesOnly bool
}

func (f RestaurantFilter) IsEmpty() bool {
	return len(f.Regions) == 0 && len(f.Areas) == 0 && len(f.Cuisines) == 0 && len(f.Prices) == 0 && !f.FavoritesOnly
}
