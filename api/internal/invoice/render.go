package invoice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the external invoice renderer and returns the PDF bytes.
type Client struct {
	URL    string
	APIKey string
	httpc  *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		URL:    strings.TrimSpace(apiURL),
		APIKey: strings.TrimSpace(apiKey),
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Render(ctx context.Context, r Request) ([]byte, error) {
	body := r.FormValues().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("render: status %d: %s", resp.StatusCode, string(x))
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("render: read body: %w", err)
	}
	return pdf, nil
}
