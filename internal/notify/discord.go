package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
)

// ErrBadStatus wraps a non-2xx response from the webhook endpoint.
var ErrBadStatus = errors.New("webhook returned unexpected status")

// Discord posts plain-text messages to a Discord webhook.
type Discord struct {
	http       tls_client.HttpClient
	webhookURL string
}

func NewDiscord(webhookURL string) (*Discord, error) {
	httpClient, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(30),
	)
	if err != nil {
		return nil, err
	}
	return &Discord{http: httpClient, webhookURL: webhookURL}, nil
}

func (d *Discord) Notify(message string) error {
	raw, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, d.webhookURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	return nil
}
