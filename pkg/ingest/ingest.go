// Package ingest turns a shared map or social link into a restaurant
// candidate for the user to confirm. Nothing here writes to the store.
package ingest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/integrations/socialweb"
	"droscher.com/RestaurantRandomizer/pkg/model"
)

const (
	SupportedFormats = "Supported formats: Google Maps, TikTok, Instagram"

	maxCandidateSearches = 3
)

var ErrUnsupportedLink = errors.New("could not extract place information from link")

type MetadataFetcher interface {
	Fetch(ctx context.Context, platform string, link string) (*socialweb.Metadata, error)
}

type LinkExpander interface {
	Expand(ctx context.Context, link string) string
}

// Candidate is an unconfirmed set of restaurant fields derived from a link.
type Candidate struct {
	Source              LinkKind `json:"source"`
	Name                string   `json:"name,omitempty"`
	Address             string   `json:"address,omitempty"`
	Area                string   `json:"area,omitempty"`
	County              string   `json:"county,omitempty"`
	Cuisine             string   `json:"cuisine,omitempty"`
	Price               string   `json:"price,omitempty"`
	PriceLevel          string   `json:"priceLevel,omitempty"`
	Types               []string `json:"types,omitempty"`
	PlaceID             string   `json:"placeId,omitempty"`
	GoogleMapsURL       string   `json:"googleMapsUrl,omitempty"`
	MatchedCandidate    string   `json:"matchedCandidate,omitempty"`
	Caption             string   `json:"caption,omitempty"`
	Author              string   `json:"author,omitempty"`
	Candidates          []string `json:"extractedRestaurants,omitempty"`
	RequiresManualEntry bool     `json:"requiresManualEntry"`
	Message             string   `json:"message,omitempty"`
}

type Service struct {
	lookup   integrations.PlaceLookup
	social   MetadataFetcher
	expander LinkExpander
	mappings *Mappings
	logger   *zap.Logger
}

func NewService(lookup integrations.PlaceLookup, social MetadataFetcher, expander LinkExpander, mappings *Mappings, logger *zap.Logger) *Service {
	return &Service{lookup: lookup, social: social, expander: expander, mappings: mappings, logger: logger.Named("ingest")}
}

// ParseLink builds a candidate from a link. The caption is used for social
// links whose public metadata cannot be fetched.
func (s *Service) ParseLink(ctx context.Context, link string, caption string) (*Candidate, error) {
	switch kind := Classify(link); kind {
	case KindGoogleMaps:
		return s.fromMapsLink(ctx, strings.TrimSpace(link))
	case KindTikTok, KindInstagram:
		return s.fromSocialLink(ctx, kind, strings.TrimSpace(link), caption)
	default:
		return nil, ErrUnsupportedLink
	}
}

func (s *Service) fromMapsLink(ctx context.Context, link string) (*Candidate, error) {
	resolved := link
	if IsShortMapsLink(link) {
		resolved = s.expander.Expand(ctx, link)
		s.logger.Debug("expanded short link", zap.String("link", link), zap.String("resolved", resolved))
	}

	ref, found := ParseMapsLink(resolved)
	if !found {
		return manualEntry(KindGoogleMaps, "Could not find a place in this Google Maps link. Please enter restaurant details manually."), nil
	}

	place, err := s.lookupRef(ctx, ref)
	if err != nil {
		if errors.Is(err, integrations.ErrPlaceNotFound) || errors.Is(err, integrations.ErrInvalidRequest) {
			s.logger.Info("no place for map link", zap.String("link", resolved), zap.String("matcher", ref.Matcher))

			return manualEntry(KindGoogleMaps, "Could not find this place. Please enter restaurant details manually."), nil
		}

		return nil, err
	}

	return s.enrich(KindGoogleMaps, place), nil
}

func (s *Service) lookupRef(ctx context.Context, ref PlaceRef) (*model.Place, error) {
	if ref.PlaceID != "" {
		place, err := s.lookup.GetPlace(ctx, ref.PlaceID)
		if err == nil {
			return place, nil
		}

		if ref.Name == "" || !isRejectedID(err) {
			return nil, err
		}

		s.logger.Info("place id lookup failed, searching by name",
			zap.String("place_id", ref.PlaceID), zap.String("name", ref.Name), zap.Error(err))
	}

	return s.lookup.SearchText(ctx, ref.Name)
}

// isRejectedID reports whether the lookup refused the identifier itself, as
// opposed to failing for every request.
func isRejectedID(err error) bool {
	if errors.Is(err, integrations.ErrPlaceNotFound) || errors.Is(err, integrations.ErrInvalidRequest) {
		return true
	}

	var upstream *integrations.UpstreamError

	return errors.As(err, &upstream) && upstream.StatusCode == http.StatusBadRequest
}

func (s *Service) fromSocialLink(ctx context.Context, kind LinkKind, link string, caption string) (*Candidate, error) {
	text := ""
	author := ""

	metadata, err := s.social.Fetch(ctx, string(kind), link)
	if err != nil {
		s.logger.Warn("social metadata unavailable", zap.String("link", link), zap.Error(err))
	} else {
		text = metadata.Text()
		author = metadata.Author
	}

	if text == "" {
		text = strings.TrimSpace(caption)
	}

	if text == "" {
		return manualEntry(kind, platformName(kind)+" link detected. Please enter restaurant details manually."), nil
	}

	candidates := ExtractCandidates(text)

	for _, name := range candidates[:min(maxCandidateSearches, len(candidates))] {
		place, err := s.lookup.SearchText(ctx, name+" restaurant")
		if err != nil {
			if errors.Is(err, integrations.ErrPlaceNotFound) {
				continue
			}

			return nil, err
		}

		result := s.enrich(kind, place)
		result.MatchedCandidate = name
		result.Caption = text
		result.Author = author
		result.Candidates = candidates

		return result, nil
	}

	result := manualEntry(kind, "Could not match a restaurant from this post. Pick a candidate or enter details manually.")
	result.Caption = text
	result.Author = author
	result.Candidates = candidates

	return result, nil
}

func (s *Service) enrich(kind LinkKind, place *model.Place) *Candidate {
	priceLevel := place.PriceLevel
	if priceLevel == "" {
		priceLevel = s.mappings.DefaultPriceLevel
	}

	return &Candidate{
		Source:        kind,
		Name:          place.Name,
		Address:       place.Address,
		Area:          Area(place.Address),
		County:        s.mappings.Region(place.Address),
		Cuisine:       s.mappings.Cuisine(place.Types),
		Price:         s.mappings.Price(priceLevel),
		PriceLevel:    priceLevel,
		Types:         place.Types,
		PlaceID:       place.ID,
		GoogleMapsURL: place.MapsURL,
	}
}

func manualEntry(kind LinkKind, message string) *Candidate {
	return &Candidate{Source: kind, RequiresManualEntry: true, Message: message}
}

func platformName(kind LinkKind) string {
	switch kind {
	case KindTikTok:
		return "TikTok"
	case KindInstagram:
		return "Instagram"
	default:
		return "Google Maps"
	}
}
