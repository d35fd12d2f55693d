// Package foursquare provides a Foursquare Places v3 API client shaped for
// market analysis: competitor search, whole-area business listings, and an
// aggregated market overview. Responses are returned as loosely typed records
// so the cleaning pipeline can normalize them like any other external data.
// When the API is unreachable or rejects a request, methods degrade to
// built-in sample data instead of failing the analysis.
package foursquare

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Record is one raw place record as handed to the cleaning pipeline.
type Record = map[string]any

// MarketOverview aggregates the business composition of one search area.
type MarketOverview struct {
	TotalBusinesses  int            `json:"total_businesses"`
	Categories       map[string]int `json:"categories"`
	MarketScore      float64        `json:"market_score"`
	OpportunityCount int            `json:"opportunity_count"`
	SaturationLevel  string         `json:"saturation_level"`
	Location         string         `json:"location"`
	Radius           int            `json:"radius"`
}

// Client is the places API surface the analysis service depends on.
type Client interface {
	// SearchCompetitors finds businesses matching a standardized business
	// type near a location, sorted by distance.
	SearchCompetitors(ctx context.Context, location, businessType string, radius int) ([]Record, error)

	// LocalBusinesses lists businesses of any type near a location.
	LocalBusinesses(ctx context.Context, location string, radius int) ([]Record, error)

	// MarketOverview aggregates the area's business composition.
	MarketOverview(ctx context.Context, location string, radius int) (*MarketOverview, error)
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Foursquare Places client.
func New(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:     apiKey,
		baseURL:    "https://api.foursquare.com/v3/places",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// typeQueries maps standardized business types to the comma-separated query
// keywords the search endpoint expects. Unmapped types are passed through as
// the query verbatim.
var typeQueries = map[string]string{
	"restaurant":   "restaurant,cafe,food,dining,pizza,burger,coffee",
	"retail":       "store,shop,boutique,market,clothing,electronics,retail",
	"fitness":      "gym,fitness,yoga,studio,wellness,health",
	"beauty":       "salon,spa,barber,nail,beauty,massage",
	"professional": "office,law,accounting,consulting,insurance",
	"healthcare":   "clinic,doctor,dental,medical,pharmacy",
	"education":    "school,college,training,education,tutoring",
}
