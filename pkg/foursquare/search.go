package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// maxRadius is the largest search radius the Places API accepts, in meters.
const maxRadius = 5000

const (
	competitorLimit = 20
	areaLimit       = 50
)

type searchResponse struct {
	Results []place `json:"results"`
}

type place struct {
	FsqID      string `json:"fsq_id"`
	Name       string `json:"name"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Geocodes struct {
		Main struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"main"`
	} `json:"geocodes"`
	Distance int     `json:"distance"`
	Rating   float64 `json:"rating"`
	Price    int     `json:"price"`
	Website  string  `json:"website"`
	Tel      string  `json:"tel"`
	Hours    struct {
		Regular []regularHours `json:"regular"`
	} `json:"hours"`
}

// regularHours is one day's span in the API's hours block. Day runs 1
// (Monday) through 7 (Sunday); Open and Close are "HHMM" strings.
type regularHours struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (c *client) SearchCompetitors(ctx context.Context, location, businessType string, radius int) ([]Record, error) {
	query, ok := typeQueries[businessType]
	if !ok {
		query = businessType
	}

	params := url.Values{
		"query":  {query},
		"near":   {location},
		"radius": {strconv.Itoa(min(radius, maxRadius))},
		"limit":  {strconv.Itoa(competitorLimit)},
		"sort":   {"DISTANCE"},
	}

	places, err := c.search(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		zap.L().Warn("foursquare: competitor search failed, using sample data",
			zap.String("location", location),
			zap.String("business_type", businessType),
			zap.Error(err))
		return sampleCompetitors(businessType), nil
	}

	records := make([]Record, 0, len(places))
	for _, p := range places {
		records = append(records, placeRecord(p))
	}
	return records, nil
}

func (c *client) LocalBusinesses(ctx context.Context, location string, radius int) ([]Record, error) {
	params := url.Values{
		"near":   {location},
		"radius": {strconv.Itoa(min(radius, maxRadius))},
		"limit":  {strconv.Itoa(areaLimit)},
		"sort":   {"DISTANCE"},
	}

	places, err := c.search(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		zap.L().Warn("foursquare: area search failed, using sample data",
			zap.String("location", location),
			zap.Error(err))
		return sampleLocalBusinesses(), nil
	}

	records := make([]Record, 0, len(places))
	for _, p := range places {
		records = append(records, placeRecord(p))
	}
	return records, nil
}

func (c *client) MarketOverview(ctx context.Context, location string, radius int) (*MarketOverview, error) {
	params := url.Values{
		"near":   {location},
		"radius": {strconv.Itoa(min(radius, maxRadius))},
		"limit":  {strconv.Itoa(areaLimit)},
		"sort":   {"DISTANCE"},
	}

	places, err := c.search(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		zap.L().Warn("foursquare: market overview failed, using sample data",
			zap.String("location", location),
			zap.Error(err))
		return sampleMarketOverview(), nil
	}

	records := make([]Record, 0, len(places))
	for _, p := range places {
		records = append(records, placeRecord(p))
	}

	categories := make(map[string]int)
	for _, r := range records {
		category, _ := r["category"].(string)
		if category == "" {
			category = "Other"
		}
		categories[category]++
	}

	total := len(records)
	return &MarketOverview{
		TotalBusinesses:  total,
		Categories:       categories,
		MarketScore:      math.Min(10, math.Max(1, float64(total)/10)),
		OpportunityCount: max(0, 15-total/5),
		SaturationLevel:  saturationLevel(total),
		Location:         location,
		Radius:           radius,
	}, nil
}

// search issues one places search call and decodes the result list.
func (c *client) search(ctx context.Context, params url.Values) ([]place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "foursquare: rate limit")
	}

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "foursquare: build request")
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "foursquare: search request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("foursquare: search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "foursquare: read body")
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, eris.Wrap(err, "foursquare: parse response")
	}
	return searchResp.Results, nil
}

// placeRecord flattens an API place into the raw record shape the cleaning
// pipeline consumes.
func placeRecord(p place) Record {
	category := ""
	if len(p.Categories) > 0 {
		category = p.Categories[0].Name
	}

	return Record{
		"id":          p.FsqID,
		"name":        p.Name,
		"category":    category,
		"address":     p.Location.FormattedAddress,
		"distance":    p.Distance,
		"rating":      p.Rating,
		"price_level": p.Price,
		"latitude":    p.Geocodes.Main.Latitude,
		"longitude":   p.Geocodes.Main.Longitude,
		"website":     p.Website,
		"phone":       p.Tel,
		"hours":       hoursFromRegular(p.Hours.Regular),
	}
}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// hoursFromRegular renders the API's per-day spans as readable clock ranges
// keyed by weekday name.
func hoursFromRegular(regular []regularHours) map[string]string {
	hours := make(map[string]string)
	for _, day := range regular {
		if day.Day < 1 || day.Day > 7 || day.Open == "" || day.Close == "" {
			continue
		}
		hours[weekdayNames[day.Day-1]] = fmt.Sprintf("%s - %s", clockTime(day.Open), clockTime(day.Close))
	}
	return hours
}

// clockTime converts an "HHMM" string to a 12-hour clock string. Malformed
// values pass through unchanged.
func clockTime(hhmm string) string {
	if len(hhmm) != 4 {
		return hhmm
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return hhmm
	}
	minute, err := strconv.Atoi(hhmm[2:])
	if err != nil {
		return hhmm
	}

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%02d AM", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%02d AM", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d PM", minute)
	default:
		return fmt.Sprintf("%d:%02d PM", hour-12, minute)
	}
}

func saturationLevel(total int) string {
	switch {
	case total < 20:
		return "Low"
	case total < 50:
		return "Medium"
	default:
		return "High"
	}
}
