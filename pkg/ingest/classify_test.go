package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/RestaurantRandomizer/pkg/ingest"
)

type ClassifyTestSuite struct {
	suite.Suite
}

func TestClassifyTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifyTestSuite))
}

func (suite *ClassifyTestSuite) TestClassify() {
	tests := []struct {
		link string
		want ingest.LinkKind
	}{
		{"https://www.google.com/maps/place/Mikiya/@33.6,-117.8,17z", ingest.KindGoogleMaps},
		{"https://maps.google.com/?q=Tsujita+LA", ingest.KindGoogleMaps},
		{"https://maps.app.goo.gl/AbCdEf123", ingest.KindGoogleMaps},
		{"maps.app.goo.gl/AbCdEf123", ingest.KindGoogleMaps},
		{"https://goo.gl/maps/xyz", ingest.KindGoogleMaps},
		{"https://goo.gl/other", ingest.KindUnknown},
		{"https://www.google.com/search?q=ramen", ingest.KindUnknown},
		{"https://www.tiktok.com/@eater/video/123", ingest.KindTikTok},
		{"https://vm.tiktok.com/ZM123/", ingest.KindTikTok},
		{"https://www.instagram.com/reel/abc/", ingest.KindInstagram},
		{"https://notinstagram.com/p/abc", ingest.KindUnknown},
		{"https://example.com/restaurant", ingest.KindUnknown},
		{"", ingest.KindUnknown},
	}

	for _, tt := range tests {
		suite.Equal(tt.want, ingest.Classify(tt.link), tt.link)
	}
}

func (suite *ClassifyTestSuite) TestIsShortMapsLink() {
	suite.True(ingest.IsShortMapsLink("https://maps.app.goo.gl/AbCdEf123"))
	suite.True(ingest.IsShortMapsLink("https://goo.gl/maps/xyz"))
	suite.False(ingest.IsShortMapsLink("https://www.google.com/maps/place/Mikiya"))
	suite.False(ingest.IsShortMapsLink("https://www.tiktok.com/@eater/video/123"))
}
