package client

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	http "github.com/bogdanfinn/fhttp"

	"roomitor/internal/headers"
)

// FetchToken loads the listing page and extracts the CSRF token from its
// <meta name="csrf-token"> tag. The response also seeds the session cookie
// jar; call this before FetchAvailability.
func (s *Session) FetchToken(targetURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, targetURL, nil)
	if err != nil {
		return "", err
	}
	req.Header = headers.Page(s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d fetching %s", ErrBadStatus, resp.StatusCode, targetURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	token := doc.Find(`meta[name="csrf-token"]`).AttrOr("content", "")
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}
