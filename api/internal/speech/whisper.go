// Package speech wraps the external transcription endpoint. Recognition is
// best-effort: an empty transcript is a normal outcome, not an error.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"billbot/api/internal/numword"
)

// Recognizer is what the UI layer depends on; the Whisper client below is
// the production implementation.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte, lang numword.Language) (string, error)
}

type WhisperClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{
		apiKey:  apiKey,
		baseURL: "https://api.openai.com/v1",
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether a recognizer backend is configured at all.
// Without one the bot falls back to typed input.
func (c *WhisperClient) Available() bool { return c.apiKey != "" }

func languageCode(lang numword.Language) string {
	if lang == numword.Urdu {
		return "ur"
	}
	return "en"
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, lang numword.Language) (string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	part, err := w.CreateFormFile("file", "voice.ogg")
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}
	if err := w.WriteField("model", "whisper-1"); err != nil {
		return "", fmt.Errorf("writing model field: %w", err)
	}
	if err := w.WriteField("language", languageCode(lang)); err != nil {
		return "", fmt.Errorf("writing language field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("transcription error %d: %s", resp.StatusCode, string(x))
	}

	var result transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return strings.TrimSpace(result.Text), nil
}
