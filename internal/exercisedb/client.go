// ABOUTME: ExerciseDB (RapidAPI) client for exercise metadata lookups.
// ABOUTME: Consults the response cache before every request and fills it after.
package exercisedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/gymtrack/internal/cache"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "https://exercisedb.p.rapidapi.com"
	DefaultHost    = "exercisedb.p.rapidapi.com"

	cacheKeyPrefix = "exercisedb:"
	minIDLength    = 4
)

// Exercise is an ExerciseDB catalogue record.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	GifURL           string   `json:"gifUrl"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
}

// APIError is returned for rejected input and failed upstream calls.
// Code is the HTTP status as text, "500" when there was no response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exercisedb %s: %s", e.Code, e.Message)
}

// Config holds the RapidAPI credentials.
type Config struct {
	APIKey  string
	Host    string
	BaseURL string
}

// Client calls the ExerciseDB API.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	cache      *cache.Cache
	httpClient *http.Client
}

// NewClient creates a Client. A nil cache disables caching.
func NewClient(cfg Config, c *cache.Cache) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		host:       host,
		cache:      c,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetExercise fetches a single exercise by its ExerciseDB id.
func (c *Client) GetExercise(ctx context.Context, id string) (*Exercise, error) {
	if len(id) < minIDLength {
		return nil, &APIError{Message: "exercise id must be at least 4 characters", Code: "400"}
	}

	endpoint := "/exercises/exercise/" + id
	var cached Exercise
	if c.cache.Get(ctx, cacheKeyPrefix+endpoint, &cached) {
		log.Debug().Str("id", id).Msg("Using cached exercise")
		return &cached, nil
	}

	body, err := c.get(ctx, "/exercises/exercise/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, withFallbackMessage(err, fmt.Sprintf("failed to fetch exercise with id %s", id))
	}
	var ex Exercise
	if err := json.Unmarshal(body, &ex); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("decode exercise: %v", err), Code: "500"}
	}

	c.cache.Set(ctx, cacheKeyPrefix+endpoint, ex)
	return &ex, nil
}

// SearchExercises looks exercises up by name. When the full query has no
// match, the first word alone is tried and its results are cached under the
// full query. Empty results are returned without error and never cached.
func (c *Client) SearchExercises(ctx context.Context, query string, offset, limit int) ([]Exercise, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("/exercises/name/%s?offset=%d&limit=%d", q, offset, limit)
	var cached []Exercise
	if c.cache.Get(ctx, cacheKeyPrefix+endpoint, &cached) && len(cached) > 0 {
		log.Debug().Str("query", q).Msg("Using cached search results")
		return cached, nil
	}

	results, err := c.search(ctx, q, params)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		if first := strings.Fields(q); len(first) > 1 {
			log.Debug().Str("query", q).Str("partial", first[0]).Msg("No exact matches, trying partial match")
			results, err = c.search(ctx, first[0], params)
			if err != nil {
				return nil, err
			}
		}
	}

	if len(results) == 0 {
		return []Exercise{}, nil
	}
	c.cache.Set(ctx, cacheKeyPrefix+endpoint, results)
	return results, nil
}

func (c *Client) search(ctx context.Context, q string, params url.Values) ([]Exercise, error) {
	body, err := c.get(ctx, "/exercises/name/"+url.PathEscape(q), params)
	if err != nil {
		return nil, withFallbackMessage(err, "failed to search exercises")
	}
	var results []Exercise
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("decode search results: %v", err), Code: "500"}
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("create request: %v", err), Code: "500"}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("X-Request-ID", requestID)

	log.Debug().Str("request_id", requestID).Str("path", path).Msg("ExerciseDB request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Msg("ExerciseDB request failed")
		return nil, &APIError{Code: "500"}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("read body: %v", err), Code: "500"}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Code: strconv.Itoa(resp.StatusCode)}
		var upstream struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &upstream) == nil {
			apiErr.Message = upstream.Message
		}
		log.Warn().Str("request_id", requestID).Int("status", resp.StatusCode).Msg("ExerciseDB request failed")
		return nil, apiErr
	}
	return body, nil
}

// withFallbackMessage fills an empty APIError message.
func withFallbackMessage(err error, msg string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = msg
	}
	return err
}
