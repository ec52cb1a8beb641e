package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/RestaurantRandomizer/pkg/ingest"
)

type MapsLinkTestSuite struct {
	suite.Suite
}

func TestMapsLinkTestSuite(t *testing.T) {
	suite.Run(t, new(MapsLinkTestSuite))
}

func (suite *MapsLinkTestSuite) TestParseMapsLink() {
	tests := []struct {
		name string
		link string
		want ingest.PlaceRef
	}{
		{
			name: "data place id keeps the path name",
			link: "https://www.google.com/maps/place/Joe%27s+Diner/@34.05,-118.24,17z/data=!3m1!4b1!4m6!3m5!1sChIJCAFE123!8m2",
			want: ingest.PlaceRef{PlaceID: "ChIJCAFE123", Name: "Joe's Diner", Matcher: "data-place-id"},
		},
		{
			name: "bare data place id",
			link: "https://www.google.com/maps/data=!4m2!3m1!1sCAFE123!5m1",
			want: ingest.PlaceRef{PlaceID: "CAFE123", Matcher: "data-place-id"},
		},
		{
			name: "data place id at the end",
			link: "https://www.google.com/maps/place/data=!4m2!3m1!1sChIJEND",
			want: ingest.PlaceRef{PlaceID: "ChIJEND", Matcher: "data-place-id"},
		},
		{
			name: "place id parameter",
			link: "https://maps.google.com/?place_id=ChIJxyz&hl=en",
			want: ingest.PlaceRef{PlaceID: "ChIJxyz", Matcher: "place-id-param"},
		},
		{
			name: "cid pair with name",
			link: "https://www.google.com/maps/place/Mikiya/@33.6,-117.8,17z/data=!4m6!3m5!1s0x80dcdd:0x1a2b3c!8m2",
			want: ingest.PlaceRef{PlaceID: "0x80dcdd:0x1a2b3c", Name: "Mikiya", Matcher: "cid-pair"},
		},
		{
			name: "place path name only",
			link: "https://www.google.com/maps/place/Sushi+Damu/@33.7,-117.8,15z",
			want: ingest.PlaceRef{Name: "Sushi Damu", Matcher: "place-path-name"},
		},
		{
			name: "query parameter",
			link: "https://maps.google.com/?q=Tsujita+LA",
			want: ingest.PlaceRef{Name: "Tsujita LA", Matcher: "query-param"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ref, found := ingest.ParseMapsLink(tt.link)

			suite.True(found)
			suite.Equal(tt.want, ref)
		})
	}
}

func (suite *MapsLinkTestSuite) TestParseMapsLink_NothingToFind() {
	ref, found := ingest.ParseMapsLink("https://www.google.com/maps/@34.0,-118.2,15z")

	suite.False(found)
	suite.Equal(ingest.PlaceRef{}, ref)
}
