package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is a Codeforces API client that implements the Client interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new Codeforces client.
func NewClient(baseURL string) Client {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// GetUsers fetches the profiles for the given handles with a single
// user.info call. Each invocation performs exactly one network request.
func (c *APIClient) GetUsers(ctx context.Context, handles []string) ([]User, error) {
	if len(handles) == 0 {
		return nil, fmt.Errorf("no handles given")
	}

	reqURL := fmt.Sprintf("%s/user.info?handles=%s", c.BaseURL, url.QueryEscape(strings.Join(handles, ";")))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "KhelileAyyun/1.0")

	log.Debug("Requesting user info from Codeforces API", "url", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Codeforces request failed", "error", err)
		return nil, &LookupError{}
	}
	defer resp.Body.Close()

	// Codeforces reports failures (unknown handle, rate limit) as a FAILED
	// envelope with a comment, usually alongside a 4xx status. Decode the
	// envelope first so the remote's own reason reaches the user.
	var infoResponse userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&infoResponse); err != nil {
		log.Error("Received undecodable response from Codeforces API", "status", resp.StatusCode, "error", err)
		return nil, &LookupError{}
	}

	if infoResponse.Status != statusOK {
		log.Warn("Codeforces API reported failure", "status", infoResponse.Status, "comment", infoResponse.Comment)
		return nil, &LookupError{Comment: infoResponse.Comment}
	}

	log.Debug("Fetched user info", "count", len(infoResponse.Result))
	return infoResponse.Result, nil
}
