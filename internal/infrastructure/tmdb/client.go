// Package tmdb is the title-metadata search collaborator. Best-effort only:
// any failure degrades to empty results and never blocks scoring or
// persistence of an assessment.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	cacheTTL       = 10 * time.Minute
	maxCastNames   = 5
	maxCastLookups = 5
)

// Result is one candidate title returned by the search collaborator.
type Result struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	MediaType   string   `json:"media_type"`
	ReleaseDate string   `json:"release_date,omitempty"`
	PosterPath  string   `json:"poster_path,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	VoteAverage float64  `json:"vote_average"`
	Cast        []string `json:"cast,omitempty"`
}

// Client wraps TMDB API calls with a short-lived result cache.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewClient creates a TMDB client configured from the environment.
func NewClient() *Client {
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ TMDB_API_KEY not set, title search will return empty results")
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// NewClientWith is for tests and alternate deployments.
func NewClientWith(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type searchResponse struct {
	Results []struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Name         string  `json:"name"`
		MediaType    string  `json:"media_type"`
		ReleaseDate  string  `json:"release_date"`
		FirstAirDate string  `json:"first_air_date"`
		PosterPath   string  `json:"poster_path"`
		Overview     string  `json:"overview"`
		VoteAverage  float64 `json:"vote_average"`
	} `json:"results"`
}

type creditsResponse struct {
	Cast []struct {
		Name string `json:"name"`
	} `json:"cast"`
}

// Search looks up candidate titles for a free-text query. Results are cached
// per query. On upstream failure the error wraps ErrUpstreamUnavailable and
// the result slice is empty; callers surface a retryable message at most.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c.apiKey == "" || query == "" {
		return []Result{}, nil
	}
	if cached, found := c.cache.Get(query); found {
		return cached.([]Result), nil
	}

	var parsed searchResponse
	endpoint := fmt.Sprintf("/search/multi?api_key=%s&query=%s", c.apiKey, url.QueryEscape(query))
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		log.Printf("⚠️ TMDB search failed: %v", err)
		return []Result{}, fmt.Errorf("%w: title search failed", entities.ErrUpstreamUnavailable)
	}

	results := make([]Result, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.MediaType != "movie" && r.MediaType != "tv" {
			continue
		}
		res := Result{
			ID:          r.ID,
			Title:       r.Title,
			MediaType:   r.MediaType,
			ReleaseDate: r.ReleaseDate,
			PosterPath:  r.PosterPath,
			Overview:    r.Overview,
			VoteAverage: r.VoteAverage,
		}
		if res.Title == "" {
			res.Title = r.Name
		}
		if res.ReleaseDate == "" {
			res.ReleaseDate = r.FirstAirDate
		}
		// Cast lookup is enrichment; a failure leaves Cast empty.
		if len(results) < maxCastLookups {
			res.Cast = c.topCast(ctx, r.MediaType, r.ID)
		}
		results = append(results, res)
	}

	c.cache.Set(query, results, gocache.DefaultExpiration)
	return results, nil
}

func (c *Client) topCast(ctx context.Context, mediaType string, id int64) []string {
	var parsed creditsResponse
	endpoint := fmt.Sprintf("/%s/%d/credits?api_key=%s", mediaType, id, c.apiKey)
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil
	}
	names := make([]string, 0, maxCastNames)
	for _, member := range parsed.Cast {
		if len(names) == maxCastNames {
			break
		}
		names = append(names, member.Name)
	}
	return names
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
