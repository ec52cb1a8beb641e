package ingest

import (
	"net/url"
	"regexp"
	"strings"
)

// PlaceRef is what a map link says about a place: an identifier, a name to
// search for, or both.
type PlaceRef struct {
	PlaceID string
	Name    string
	Matcher string
}

type linkMatcher struct {
	name    string
	isID    bool
	extract func(link string) (string, bool)
}

var (
	dataPlaceIDPattern  = regexp.MustCompile(`!1s([A-Za-z0-9_-]+)(?:!|$)`)
	placeIDParamPattern = regexp.MustCompile(`[?&]place_id=([^&#]+)`)
	cidPairPattern      = regexp.MustCompile(`(?i)!1s(0x[0-9a-f]+:0x[0-9a-f]+)`)
	placePathPattern    = regexp.MustCompile(`/place/([^/@?]+)`)
	queryParamPattern   = regexp.MustCompile(`[?&]q=([^&#]+)`)
)

// linkMatchers are tried in order; the first that matches wins.
var linkMatchers = []linkMatcher{
	{name: "data-place-id", isID: true, extract: submatch(dataPlaceIDPattern, identity)},
	{name: "place-id-param", isID: true, extract: submatch(placeIDParamPattern, queryUnescape)},
	{name: "cid-pair", isID: true, extract: submatch(cidPairPattern, identity)},
	{name: "place-path-name", extract: placePathName},
	{name: "query-param", extract: submatch(queryParamPattern, queryUnescape)},
}

func submatch(pattern *regexp.Regexp, decode func(string) string) func(string) (string, bool) {
	return func(link string) (string, bool) {
		match := pattern.FindStringSubmatch(link)
		if match == nil {
			return "", false
		}

		value := strings.TrimSpace(decode(match[1]))

		return value, value != ""
	}
}

// placePathName reads the name segment after /place/. A segment holding
// only the data blob carries no name.
func placePathName(link string) (string, bool) {
	name, ok := submatch(placePathPattern, pathNameUnescape)(link)
	if !ok || strings.HasPrefix(name, "data=") {
		return "", false
	}

	return name, true
}

func identity(value string) string {
	return value
}

func queryUnescape(value string) string {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

func pathNameUnescape(value string) string {
	value = strings.ReplaceAll(value, "+", " ")

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

// ParseMapsLink extracts a place reference from a map link. When an
// identifier is found, a name segment is kept too so that a failed id
// lookup can fall back to a search.
func ParseMapsLink(link string) (PlaceRef, bool) {
	for i, matcher := range linkMatchers {
		value, ok := matcher.extract(link)
		if !ok {
			continue
		}

		ref := PlaceRef{Matcher: matcher.name}
		if !matcher.isID {
			ref.Name = value

			return ref, true
		}

		ref.PlaceID = value

		for _, fallback := range linkMatchers[i+1:] {
			if fallback.isID {
				continue
			}

			if name, found := fallback.extract(link); found {
				ref.Name = name

				break
			}
		}

		return ref, true
	}

	return PlaceRef{}, false
}
