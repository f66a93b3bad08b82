package client

import (
	"errors"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var (
	// ErrTokenNotFound means the listing page rendered without the expected
	// csrf-token meta tag.
	ErrTokenNotFound = errors.New("csrf token not found in page html")
	// ErrBadStatus wraps any non-2xx response from the listing site.
	ErrBadStatus = errors.New("unexpected http status")
	// ErrDecode wraps a response body that is not JSON.
	ErrDecode = errors.New("failed to decode json from availability response")
)

// Session is one cookie-bearing connection to the listing site. The token
// fetch establishes session cookies that the availability endpoint checks,
// so both calls of a pass must go through the same Session, token first.
type Session struct {
	http      tls_client.HttpClient
	userAgent string
}

func NewSession(userAgent string) (*Session, error) {
	jar := tls_client.NewCookieJar()
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithCookieJar(jar),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}

	return &Session{http: httpClient, userAgent: userAgent}, nil
}
