package headers

import (
	http "github.com/bogdanfinn/fhttp"
)

const (
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	acceptJSON = "application/json, text/javascript, */*; q=0.01"
	acceptLang = "en-US,en;q=0.9"
	acceptEnc  = "gzip, deflate, br"
)

var (
	pageOrder = []string{
		"Accept",
		"Accept-Language",
		"Accept-Encoding",
		"User-Agent",
		"Upgrade-Insecure-Requests",
		"Sec-Fetch-Site",
		"Sec-Fetch-Mode",
		"Sec-Fetch-Dest",
		"Connection",
	}
	xhrOrder = []string{
		"Accept",
		"Accept-Language",
		"Accept-Encoding",
		"User-Agent",
		"X-CSRF-Token",
		"X-Requested-With",
		"Referer",
		"Sec-Fetch-Site",
		"Sec-Fetch-Mode",
		"Sec-Fetch-Dest",
		"Connection",
	}
)

// Page builds the header set for the initial listing-page navigation.
func Page(userAgent string) http.Header {
	h := http.Header{}
	h.Set("Accept", acceptHTML)
	h.Set("Accept-Language", acceptLang)
	h.Set("Accept-Encoding", acceptEnc)
	h.Set("User-Agent", userAgent)
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Connection", "keep-alive")
	h[http.HeaderOrderKey] = pageOrder
	return h
}

// XHR builds the header set for the rooms_availability call. The endpoint
// rejects requests that do not look like the listing page's own ajax: it
// wants the CSRF token, the XMLHttpRequest marker and a same-page referer.
func XHR(userAgent, token, referer string) http.Header {
	h := http.Header{}
	h.Set("Accept", acceptJSON)
	h.Set("Accept-Language", acceptLang)
	h.Set("Accept-Encoding", acceptEnc)
	h.Set("User-Agent", userAgent)
	h.Set("X-CSRF-Token", token)
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Referer", referer)
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Connection", "keep-alive")
	h[http.HeaderOrderKey] = xhrOrder
	return h
}
