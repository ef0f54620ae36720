// Package gemini implements extract.Extractor on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"billbot/api/internal/extract"
	"billbot/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

const systemPrompt = `You extract billing line items from a shopkeeper's free-text bill description.
Return a JSON array, one object per purchased item:
[{"item_name": string, "quantity": number, "price": number}]
Quantities and prices are plain numbers. Do not invent items that are not mentioned.
Output only JSON.`

// Extract sends the bill text to Gemini once and maps the reply. No retry:
// a transient failure is reported and the user triggers generation again.
func (e *Engine) Extract(ctx context.Context, billText string) (extract.Result, error) {
	if e.APIKey == "" {
		return extract.Result{}, fmt.Errorf("%w: GEMINI_API_KEY is empty", extract.ErrTransport)
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return extract.Result{}, fmt.Errorf("%w: %v", extract.ErrTransport, err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	user := fmt.Sprintf(
		"Extract structured JSON for bill items, including item names, quantities, and prices from the following text: '%s'",
		billText)

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return extract.Result{}, fmt.Errorf("%w: %v", extract.ErrTransport, err)
	}
	raw := firstText(resp)
	if strings.TrimSpace(raw) == "" {
		return extract.Result{}, fmt.Errorf("%w: empty response", extract.ErrMalformedPayload)
	}

	return extract.DecodeItems(util.StripCodeFences(raw))
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
