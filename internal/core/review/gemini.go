package review

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"

	textPath     = "candidates.0.content.parts.0.text"
	errorMsgPath = "error.message"
)

// GeminiConfig configures a GeminiClient.
type GeminiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	// Timeout bounds a single call. Zero means no timeout beyond the caller's
	// context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiClient calls the generateContent endpoint of the Gemini API.
type GeminiClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ Generator = (*GeminiClient)(nil)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// NewGeminiClient builds a client from cfg, filling in defaults.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &GeminiClient{
		endpoint: fmt.Sprintf("%s/models/%s:generateContent", base, url.PathEscape(model)),
		apiKey:   cfg.APIKey,
		client:   client,
	}
}

// Generate sends prompt as a single user part and returns the first
// candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.endpoint + "?" + url.Values{"key": {c.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", c.redact(err))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("gemini: close response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}

	parsed := gjson.ParseBytes(raw)
	text := parsed.Get(textPath)
	if !text.Exists() || text.Type != gjson.String {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("%w: status %d: %s", ErrNoResponse, resp.StatusCode, parsed.Get(errorMsgPath).String())
		}
		return "", ErrNoResponse
	}

	return text.String(), nil
}

// redact strips the API key from transport errors, which embed the full URL.
func (c *GeminiClient) redact(err error) error {
	var uerr *url.Error
	if c.apiKey == "" || !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{
		Op:  uerr.Op,
		URL: strings.ReplaceAll(uerr.URL, url.QueryEscape(c.apiKey), "REDACTED"),
		Err: uerr.Err,
	}
}
