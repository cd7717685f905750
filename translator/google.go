package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultGoogleBaseURL is the public Google Translate endpoint used by
// browser extensions. It needs no API key.
const DefaultGoogleBaseURL = "https://translate.googleapis.com/translate_a/single"

var (
	ErrEmptyTranslation = errors.New("translation service returned no text")
)

// GoogleClient calls the public Google Translate endpoint.
type GoogleClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGoogleClient creates a client with the given request timeout. A zero
// timeout defaults to 15 seconds.
func NewGoogleClient(timeout time.Duration) *GoogleClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GoogleClient{
		BaseURL:    DefaultGoogleBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Translate translates text into the target language code (e.g. "ur"),
// letting the service detect the source language.
func (g *GoogleClient) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "blogsum/1.0")

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call translation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated segments from the nested
// array returned by the endpoint: [[["translated","original",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrEmptyTranslation
	}

	var segments [][]any
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("failed to parse segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}
