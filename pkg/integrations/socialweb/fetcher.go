package socialweb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
)

const (
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
)

var ErrMetadataUnavailable = errors.New("post metadata unavailable")

// instagram descriptions look like `12 likes, 3 comments - user on May 1, 2024: "caption"`
var instagramCaptionPattern = regexp.MustCompile(`(?s)^.*?:\s*["“](.*)["”]\s*\.?\s*$`)

// Metadata is the public text attached to a shared post.
type Metadata struct {
	Title   string
	Caption string
	Author  string
}

// Text is the caption, or the title when the post has no caption.
func (m *Metadata) Text() string {
	if caption := strings.TrimSpace(m.Caption); caption != "" {
		return caption
	}

	return strings.TrimSpace(m.Title)
}

type oEmbedJSON struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

type ogTags struct {
	Title       string `attr:"content" selector:"meta[property='og:title']"`
	Description string `attr:"content" selector:"meta[property='og:description']"`
}

type Fetcher struct {
	userAgent string
	oEmbedURL string
	logger    *zap.Logger
	conf      configs.Social
}

func NewFetcher(conf configs.Social, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		userAgent: conf.UserAgent,
		oEmbedURL: conf.TikTokOEmbedURL,
		logger:    logger.Named("socialweb"),
		conf:      conf,
	}
}

func (f *Fetcher) newCollector(ctx context.Context, target *url.URL) *colly.Collector {
	collector := colly.NewCollector(
		colly.AllowedDomains(target.Hostname()),
		colly.UserAgent(f.userAgent),
		colly.StdlibContext(ctx),
	)

	if f.conf.Timeout > 0 {
		collector.SetRequestTimeout(f.conf.Timeout)
	}

	return collector
}

// Fetch reads the public title and caption of a TikTok or Instagram post.
func (f *Fetcher) Fetch(ctx context.Context, platform string, link string) (*Metadata, error) {
	switch platform {
	case PlatformTikTok:
		return f.fetchTikTok(ctx, link)
	case PlatformInstagram:
		return f.fetchInstagram(ctx, link)
	default:
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrMetadataUnavailable, platform)
	}
}

func (f *Fetcher) fetchTikTok(ctx context.Context, link string) (*Metadata, error) {
	endpoint, err := url.Parse(f.oEmbedURL)
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("url", link)
	endpoint.RawQuery = query.Encode()

	var (
		errs     error
		metadata *Metadata
	)

	collector := f.newCollector(ctx, endpoint)

	collector.OnResponse(func(response *colly.Response) {
		var embed oEmbedJSON

		err := json.Unmarshal(response.Body, &embed)
		if multierr.AppendInto(&errs, err) {
			f.logger.Error("failed to decode oembed response", zap.String("link", link), zap.Error(err))

			return
		}

		metadata = &Metadata{Caption: strings.TrimSpace(embed.Title), Author: embed.AuthorName}
	})

	collector.OnError(func(response *colly.Response, err error) {
		f.logger.Warn("error fetching tiktok oembed", zap.Int("status", response.StatusCode), zap.Error(err))
		multierr.AppendInto(&errs, err)
	})

	multierr.AppendInto(&errs, collector.Visit(endpoint.String()))

	return result(metadata, errs)
}

func (f *Fetcher) fetchInstagram(ctx context.Context, link string) (*Metadata, error) {
	target, err := url.Parse(link)
	if err != nil {
		return nil, err
	}

	var (
		errs     error
		metadata *Metadata
	)

	collector := f.newCollector(ctx, target)

	collector.OnHTML("head", func(element *colly.HTMLElement) {
		tags := ogTags{}

		err := element.Unmarshal(&tags)
		if multierr.AppendInto(&errs, err) {
			f.logger.Error("failed to unmarshal og tags", zap.String("link", link), zap.Error(err))

			return
		}

		caption := tags.Description
		if match := instagramCaptionPattern.FindStringSubmatch(caption); match != nil {
			caption = match[1]
		}

		metadata = &Metadata{
			Title:   strings.TrimSpace(tags.Title),
			Caption: strings.TrimSpace(caption),
			Author:  instagramAuthor(tags.Title),
		}
	})

	collector.OnError(func(response *colly.Response, err error) {
		f.logger.Warn("error fetching instagram page", zap.Int("status", response.StatusCode), zap.Error(err))
		multierr.AppendInto(&errs, err)
	})

	multierr.AppendInto(&errs, collector.Visit(target.String()))

	return result(metadata, errs)
}

func result(metadata *Metadata, errs error) (*Metadata, error) {
	if metadata == nil || metadata.Text() == "" {
		if errs != nil {
			return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, errs)
		}

		return nil, ErrMetadataUnavailable
	}

	return metadata, nil
}

// instagram titles read `Display Name on Instagram: "..."`
func instagramAuthor(title string) string {
	name, _, found := strings.Cut(title, " on Instagram")
	if !found {
		return ""
	}

	return strings.TrimSpace(name)
}
