// /internal/fetch/redirect.go
package fetch

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound means the upstream answered 404 for the probed URL.
	ErrNotFound = errors.New("upstream resource not found")
	// ErrMissingLocation means a redirect status arrived without a Location header.
	ErrMissingLocation = errors.New("redirect response has no Location header")
)

// UnexpectedStatusError is returned when the upstream answers with anything
// other than a temporary redirect or 404.
type UnexpectedStatusError struct {
	Status int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("expected a redirect, got HTTP %d", e.Status)
}

// Client is the shared HTTP client for redirect resolution and downloads.
// Redirects are captured rather than followed so the Location target can be
// inspected by the caller.
var Client = resty.New().SetRedirectPolicy(
	resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}),
)

// ResolveRedirect issues a single GET against url and returns the target of
// its redirect. Exactly one hop: the returned URL is not probed further. No
// retries; any network failure propagates immediately.
func ResolveRedirect(url string) (string, error) {
	resp, err := Client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", url, err)
	}

	switch resp.StatusCode() {
	case http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
		// expected
	case http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", url, ErrNotFound)
	default:
		return "", &UnexpectedStatusError{Status: resp.StatusCode()}
	}

	target := resp.Header().Get("Location")
	if target == "" {
		return "", fmt.Errorf("%s: %w", url, ErrMissingLocation)
	}
	return target, nil
}
