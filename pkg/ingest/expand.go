package ingest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RedirectExpander resolves short links by reading a single redirect.
type RedirectExpander struct {
	client *resty.Client
	logger *zap.Logger
}

func NewRedirectExpander(timeout time.Duration, logger *zap.Logger) *RedirectExpander {
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &RedirectExpander{client: client, logger: logger}
}

// Expand returns the redirect target of link, or link itself when the
// request fails or does not redirect.
func (e *RedirectExpander) Expand(ctx context.Context, link string) string {
	res, err := e.client.R().SetContext(ctx).Head(link)
	if err != nil {
		e.logger.Warn("could not expand short link", zap.String("link", link), zap.Error(err))

		return link
	}

	location := res.Header().Get("Location")
	if location == "" || res.StatusCode() < http.StatusMultipleChoices || res.StatusCode() >= http.StatusBadRequest {
		return link
	}

	target, err := url.Parse(location)
	if err != nil {
		return link
	}

	if base, err := url.Parse(link); err == nil {
		target = base.ResolveReference(target)
	}

	return target.String()
}
