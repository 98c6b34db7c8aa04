package clash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"clashberry/internal/app"
	"clashberry/internal/config"

	"github.com/rs/zerolog/log"
)

// ErrEmptyClanTag is wrapped when a lookup is attempted without a tag
var ErrEmptyClanTag = errors.New("clan tag is empty")

type Client struct {
	baseURL      string
	userAgent    string
	client       *http.Client
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient(baseURL string) *Client {
	return NewClientWithConfig(baseURL, config.DefaultHTTPClientConfig)
}

// NewClientWithConfig creates a client with explicit HTTP settings
func NewClientWithConfig(baseURL string, cfg config.HTTPClientConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    cfg.MaxIdleConns,
				IdleConnTimeout: cfg.IdleConnTimeout,
			},
		},
	}
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// ResetAPICallCount resets the API call counter to zero
func (c *Client) ResetAPICallCount() {
	c.apiCallMutex.Lock()
	c.apiCallCount = 0
	c.apiCallMutex.Unlock()
}

// makeAPIRequest creates and executes an HTTP GET request to the War Data API
func (c *Client) makeAPIRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("url", url).
			Msg("API request failed")
		return nil, &FetchError{Kind: KindTransport, Err: fmt.Errorf("failed to make request: %w", err)}
	}

	c.IncrementAPICall()
	return resp, nil
}

// handleAPIResponse reads the body and converts non-2xx responses into a
// *FetchError using the status code and the error body's reason
func (c *Client) handleAPIResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{
			Kind:       KindTransport,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errorBody app.ErrorResponse
	if err := json.Unmarshal(body, &errorBody); err != nil {
		log.Debug().
			Int("status", resp.StatusCode).
			Msg("Error response body is not JSON")
		errorBody = app.ErrorResponse{Message: fmt.Sprintf("API Error: %d", resp.StatusCode)}
	}

	reason := errorBody.EffectiveReason()
	return nil, &FetchError{
		Kind:       classifyStatus(resp.StatusCode, reason),
		StatusCode: resp.StatusCode,
		Reason:     reason,
		Message:    errorBody.Message,
		Clan:       errorBody.Clan,
	}
}

// getJSON fetches path and decodes a 2xx body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path

	resp, err := c.makeAPIRequest(ctx, url)
	if err != nil {
		return err
	}

	body, err := c.handleAPIResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{
			Kind:       KindParse,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response from %s: %w", path, err),
		}
	}
	return nil
}

// GetWarData fetches the current war of a clan
func (c *Client) GetWarData(ctx context.Context, clanTag string) (*app.WarResponse, error) {
	escaped := escapeClanTag(clanTag)
	if escaped == "" {
		return nil, &FetchError{Kind: KindNotFound, Err: ErrEmptyClanTag}
	}

	log.Debug().Str("clan_tag", FormatClanTag(clanTag)).Msg("Fetching war data")

	var warResponse app.WarResponse
	if err := c.getJSON(ctx, "/api/war/"+escaped, &warResponse); err != nil {
		return nil, err
	}

	log.Debug().
		Str("clan_tag", FormatClanTag(clanTag)).
		Str("state", warResponse.State).
		Str("war_type", warResponse.WarType).
		Int("team_size", warResponse.TeamSize).
		Msg("Successfully fetched war data")

	return &warResponse, nil
}

// GetClanInfo fetches basic clan information used for search
func (c *Client) GetClanInfo(ctx context.Context, clanTag string) (*app.ClanBasicInfo, error) {
	escaped := escapeClanTag(clanTag)
	if escaped == "" {
		return nil, &FetchError{Kind: KindNotFound, Err: ErrEmptyClanTag}
	}

	log.Debug().Str("clan_tag", FormatClanTag(clanTag)).Msg("Fetching clan info")

	var info app.ClanBasicInfo
	if err := c.getJSON(ctx, "/api/clan/"+escaped, &info); err != nil {
		return nil, err
	}

	log.Debug().
		Str("clan_tag", info.Tag).
		Str("name", info.Name).
		Int("level", info.Level).
		Bool("war_log_public", info.IsWarLogPublic).
		Msg("Successfully fetched clan info")

	return &info, nil
}
