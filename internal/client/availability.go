package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"

	"roomitor/internal/headers"
)

// FetchAvailability queries the listing's internal rooms_availability
// endpoint for the requested date range and returns the decoded response
// as-is. The response shape is undocumented and changes between listings,
// so it is handed back untyped for the availability scan. roomID is
// optional; when empty the endpoint reports across all rooms.
func (s *Session) FetchAvailability(targetURL, startDate, endDate, roomID, token string) (any, error) {
	endpoint := strings.TrimRight(targetURL, "/") + "/rooms_availability"

	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	if roomID != "" {
		params.Set("room", roomID)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = headers.XHR(s.userAgent, token, targetURL)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d from %s: %s", ErrBadStatus, resp.StatusCode, endpoint, sample(body))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrDecode, err, sample(body))
	}
	return payload, nil
}

func sample(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
