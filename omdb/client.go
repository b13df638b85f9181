package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// noMatchError is the in-band payload the API sends for a query that
// matched nothing. A miss is a normal outcome, not a failure.
const noMatchError = "Movie not found!"

// Client represents an OMDb API client
type Client struct {
	baseURL    string
	apiKey     string
	mediaType  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMediaType sets the media-type filter applied to every search
func WithMediaType(t string) Option {
	return func(c *Client) {
		c.mediaType = t
	}
}

// NewClient creates a new OMDb client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		mediaType: "movie",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs a GET against the API with the access key attached
func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	requestURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// Search looks up movies by title. A query that matches nothing returns
// an empty slice and a nil error; callers distinguish a miss from a
// failure by the error value alone.
func (c *Client) Search(ctx context.Context, query string) ([]Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("type", c.mediaType)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	if response.Response != "True" {
		if strings.EqualFold(response.Error, noMatchError) {
			c.logger.Debug().Str("query", query).Msg("Search matched nothing")
			return nil, nil
		}
		return nil, fmt.Errorf("search rejected by API: %s", response.Error)
	}

	summaries := make([]Summary, 0, len(response.Search))
	for _, result := range response.Search {
		summaries = append(summaries, result.toSummary())
	}

	c.logger.Debug().
		Str("query", query).
		Int("count", len(summaries)).
		Msg("Retrieved search results")

	return summaries, nil
}

// Details looks up the full record for an external id. Any unsuccessful
// payload maps to ErrNotFound so a missing record and a bad id look the
// same to callers.
func (c *Client) Details(ctx context.Context, imdbID string) (*Detail, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, fmt.Errorf("imdb id is required")
	}

	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("details lookup failed: %w", err)
	}

	var response detailResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse details response: %w", err)
	}

	if response.Response != "True" {
		c.logger.Debug().
			Str("imdb_id", imdbID).
			Str("error", response.Error).
			Msg("Details lookup unsuccessful")
		return nil, fmt.Errorf("%w: %s", ErrNotFound, imdbID)
	}

	return response.toDetail(), nil
}

// Ping verifies the endpoint and API key with a minimal id lookup
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("i", "tt0111161")

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return err
	}

	var response detailResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if response.Response != "True" {
		return fmt.Errorf("API rejected request: %s", response.Error)
	}

	return nil
}
