// Package deliver gets a rendered invoice into the customer's hands: upload
// to a public file host, rewrite to a direct-download link, send over
// WhatsApp. Each step fails fast; nothing is retried.
package deliver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrUploadFailed = errors.New("deliver: upload failed")
	ErrSendFailed   = errors.New("deliver: send failed")
)

// Uploader pushes bytes to the anonymous file host (tmpfiles.org by default)
// and returns a direct-download URL.
type Uploader struct {
	Endpoint string
	httpc    *http.Client
}

func NewUploader(endpoint string) *Uploader {
	return &Uploader{
		Endpoint: endpoint,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

type uploadResponse struct {
	Status string `json:"status"`
	Data   struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, string(x))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUploadFailed, err)
	}
	if out.Status != "success" || out.Data.URL == "" {
		return "", fmt.Errorf("%w: host status %q", ErrUploadFailed, out.Status)
	}

	direct, err := DirectDownloadURL(out.Data.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return direct, nil
}

// DirectDownloadURL rewrites the host's landing-page URL into its raw-file
// form by inserting a "dl" segment right after the domain. The messaging API
// fetches the media itself and needs raw bytes, not an HTML page.
func DirectDownloadURL(landing string) (string, error) {
	u, err := url.Parse(landing)
	if err != nil {
		return "", err
	}
	u.Path = "/dl" + u.Path
	return u.String(), nil
}
