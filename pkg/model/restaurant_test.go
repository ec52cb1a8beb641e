package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

type RestaurantFilterTestSuite struct {
	suite.Suite
}

func TestRestaurantFilterTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantFilterTestSuite))
}

func (suite *RestaurantFilterTestSuite) TestIsEmpty() {
	suite.True(model.RestaurantFilter{}.IsEmpty())
	suite.True(model.RestaurantFilter{Regions: []string{}}.IsEmpty())
	suite.False(model.RestaurantFilter{FavoritesOnly: true}.IsEmpty())
	suite.False(model.RestaurantFilter{Areas: []string{"Ktown"}}.IsEmpty())
}

func (suite *RestaurantFilterTestSuite) TestIsPriceTier() {
	for _, tier := range model.PriceTiers {
		suite.True(model.IsPriceTier(tier))
	}

	suite.False(model.IsPriceTier("$$$$$"))
	suite.False(model.IsPriceTier(""))
}
