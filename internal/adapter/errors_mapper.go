package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx provider response into an [ErrExternalAPI]
// error. Known statuses additionally wrap a more specific sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > 256 {
		body = body[:256]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrExternalAPI, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrExternalAPI, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrExternalAPI, ErrRateLimited, body)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrExternalAPI, resp.StatusCode(), body)
	}
}

// mapTransportError wraps a failed round trip. The request URL is dropped
// from *url.Error because TMDB carries the API key in the query string.
func mapTransportError(op string, err error) error {
	if errors.Is(err, ErrExternalAPI) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return fmt.Errorf("%w: %s: %w", ErrExternalAPI, op, err)
}
