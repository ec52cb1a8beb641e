package ingest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mappings.yaml
var defaultMappings []byte

var ErrInvalidMappings = errors.New("invalid mappings")

type RegionRule struct {
	Code           string   `yaml:"code"`
	Location       string   `yaml:"location"`
	AddressMatches []string `yaml:"address_matches"`
}

// Mappings turns place categories, price levels and addresses into the
// labels stored on a restaurant.
type Mappings struct {
	Cuisines          map[string]string `yaml:"cuisines"`
	DefaultCuisine    string            `yaml:"default_cuisine"`
	Prices            map[string]string `yaml:"prices"`
	DefaultPriceLevel string            `yaml:"default_price_level"`
	DefaultPrice      string            `yaml:"default_price"`
	Regions           []RegionRule      `yaml:"regions"`
	DefaultRegion     string            `yaml:"default_region"`
}

// LoadMappings reads the tables from path, or the built-in tables when path
// is empty.
func LoadMappings(path string) (*Mappings, error) {
	data := defaultMappings

	if path != "" {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMappings, err)
		}
	}

	return ParseMappings(data)
}

func ParseMappings(data []byte) (*Mappings, error) {
	var mappings Mappings

	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMappings, err)
	}

	if err := mappings.validate(); err != nil {
		return nil, err
	}

	for i := range mappings.Regions {
		for j, match := range mappings.Regions[i].AddressMatches {
			mappings.Regions[i].AddressMatches[j] = strings.ToLower(match)
		}
	}

	return &mappings, nil
}

func (m *Mappings) validate() error {
	switch {
	case m.DefaultCuisine == "":
		return fmt.Errorf("%w: default_cuisine is required", ErrInvalidMappings)
	case m.DefaultPrice == "":
		return fmt.Errorf("%w: default_price is required", ErrInvalidMappings)
	case m.DefaultRegion == "":
		return fmt.Errorf("%w: default_region is required", ErrInvalidMappings)
	case !slices.Contains(m.RegionCodes(), m.DefaultRegion):
		return fmt.Errorf("%w: default_region %q is not a listed region", ErrInvalidMappings, m.DefaultRegion)
	}

	return nil
}

// Cuisine returns the label of the first tag present in the cuisine table.
func (m *Mappings) Cuisine(types []string) string {
	for _, tag := range types {
		if cuisine, found := m.Cuisines[tag]; found {
			return cuisine
		}
	}

	return m.DefaultCuisine
}

func (m *Mappings) Price(priceLevel string) string {
	if priceLevel == "" {
		priceLevel = m.DefaultPriceLevel
	}

	if price, found := m.Prices[priceLevel]; found {
		return price
	}

	return m.DefaultPrice
}

func (m *Mappings) Region(address string) string {
	lowered := strings.ToLower(address)

	for _, rule := range m.Regions {
		for _, match := range rule.AddressMatches {
			if strings.Contains(lowered, match) {
				return rule.Code
			}
		}
	}

	return m.DefaultRegion
}

// Location is the human readable place name used to qualify searches in a
// region. Unknown codes yield an empty string.
func (m *Mappings) Location(region string) string {
	for _, rule := range m.Regions {
		if rule.Code == region {
			return rule.Location
		}
	}

	return ""
}

func (m *Mappings) RegionCodes() []string {
	codes := make([]string, 0, len(m.Regions))
	for _, rule := range m.Regions {
		codes = append(codes, rule.Code)
	}

	return codes
}

// Area picks the neighborhood out of a formatted address: the third segment
// from the end when there are at least three, otherwise the second.
func Area(address string) string {
	parts := strings.Split(address, ",")

	switch {
	case len(parts) >= 3:
		if area := strings.TrimSpace(parts[len(parts)-3]); area != "" {
			return area
		}

		return strings.TrimSpace(parts[1])
	case len(parts) == 2:
		return strings.TrimSpace(parts[1])
	default:
		return ""
	}
}
