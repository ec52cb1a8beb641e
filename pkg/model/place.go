package model

// Place is a venue returned by an external place lookup, normalized so that
// provider field names stay inside the integration.
type Place struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Photos      []PlacePhoto  `json:"photos"`
	MapsURL     string        `json:"google_maps_url"`
	Rating      float64       `json:"rating"`
	RatingCount int           `json:"rating_count"`
	PriceLevel  string        `json:"price_level"`
	Types       []string      `json:"types"`
	Reviews     []PlaceReview `json:"reviews"`
}

type PlacePhoto struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type PlaceReview struct {
	Author       string  `json:"author"`
	AuthorPhoto  string  `json:"author_photo"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	RelativeTime string  `json:"relative_time"`
}

type PlacePhotoData struct {
	ContentType string
	Data        []byte
}
