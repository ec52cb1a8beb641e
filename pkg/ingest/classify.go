package ingest

import (
	"net/url"
	"strings"
)

type LinkKind string

const (
	KindGoogleMaps LinkKind = "google"
	KindTikTok     LinkKind = "tiktok"
	KindInstagram  LinkKind = "instagram"
	KindUnknown    LinkKind = ""
)

func parseLink(link string) (*url.URL, bool) {
	link = strings.TrimSpace(link)
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" {
		return nil, false
	}

	return parsed, true
}

func hostOf(parsed *url.URL) string {
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}

func hasDomain(host string, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// Classify decides which ingestion path handles a link. Map links are
// checked before short-video links, which are checked before photo links.
func Classify(link string) LinkKind {
	parsed, ok := parseLink(link)
	if !ok {
		return KindUnknown
	}

	host := hostOf(parsed)

	switch {
	case isMapsHost(host, parsed.Path):
		return KindGoogleMaps
	case hasDomain(host, "tiktok.com"):
		return KindTikTok
	case hasDomain(host, "instagram.com"), host == "instagr.am":
		return KindInstagram
	default:
		return KindUnknown
	}
}

func isMapsHost(host string, path string) bool {
	switch {
	case host == "maps.app.goo.gl":
		return true
	case host == "goo.gl":
		return strings.HasPrefix(path, "/maps")
	case strings.HasPrefix(host, "maps.google."):
		return true
	case strings.HasPrefix(host, "google."):
		return strings.HasPrefix(path, "/maps")
	default:
		return false
	}
}

// IsShortMapsLink reports whether the link is a redirecting map short link.
func IsShortMapsLink(link string) bool {
	parsed, ok := parseLink(link)
	if !ok {
		return false
	}

	host := hostOf(parsed)

	return host == "maps.app.goo.gl" || (host == "goo.gl" && strings.HasPrefix(parsed.Path, "/maps"))
}
