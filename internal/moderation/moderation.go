// Package moderation talks to the external bad-words API. The classification
// here is where transport-level failure (nothing usable came back) is kept
// distinct from an application-level fault carried in a well-formed response.
package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qanda-dev/qanda/internal/errors"
)

// Client handles all communication with the moderation API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type badWord struct {
	Original    string `json:"original"`
	Word        string `json:"word"`
	Deviations  int64  `json:"deviations"`
	Info        int64  `json:"info"`
	ReplacedLen int64  `json:"replacedLen"`
}

type badWordsResponse struct {
	Content         string    `json:"content"`
	BadWordsTotal   int64     `json:"bad_words_total"`
	BadWordsList    []badWord `json:"bad_words_list"`
	CensoredContent string    `json:"censored_content"`
}

type apiResponse struct {
	Message string `json:"message"`
}

// Check submits content for moderation and returns the censored rewrite.
// Failure classification, in order: no response obtained -> unreachable;
// 4xx -> client fault with the decoded envelope message; any other non-2xx
// -> server fault; a success status whose body fails to decode ->
// unreachable.
func (c *Client) Check(ctx context.Context, content string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"?censor_character=*", strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("moderation: building request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return "", errors.ClientFault(c.decodeFault(resp))
	}
	// Anything else outside the success range, redirects included, counts
	// as a server fault.
	if resp.StatusCode >= 300 {
		return "", errors.ServerFault(c.decodeFault(resp))
	}

	var body badWordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// An undecodable success body is no better than no response.
		return "", errors.Unreachable(err)
	}

	return body.CensoredContent, nil
}

// decodeFault reads the error envelope of a non-2xx response. A fault body
// that itself fails to decode keeps the status and an empty message.
func (c *Client) decodeFault(resp *http.Response) errors.APIFault {
	fault := errors.APIFault{Status: resp.StatusCode}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fault
	}
	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fault
	}
	fault.Message = envelope.Message
	return fault
}
