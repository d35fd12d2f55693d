// Package analysis orchestrates one request's pipeline: validate input,
// fetch raw place records, clean them, run the metrics engine, and assemble
// recommendation output.
package analysis

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/localmind/internal/clean"
	"github.com/sells-group/localmind/internal/metrics"
	"github.com/sells-group/localmind/internal/model"
	"github.com/sells-group/localmind/internal/placecache"
	"github.com/sells-group/localmind/internal/recommend"
	"github.com/sells-group/localmind/internal/validate"
	"github.com/sells-group/localmind/pkg/foursquare"
)

// Input validation failures the HTTP layer maps to client errors.
var (
	ErrMissingLocation     = eris.New("analysis: location is required")
	ErrMissingBusinessType = eris.New("analysis: business type is required")
)

// Service runs the analysis pipeline against a places client.
type Service struct {
	places         foursquare.Client
	cache          *placecache.Cache
	cacheTTL       time.Duration
	maxCompetitors int
}

// Option configures the service.
type Option func(*Service)

// WithCache enables response caching for upstream queries.
func WithCache(cache *placecache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithMaxCompetitors caps how many cleaned competitors a response carries.
func WithMaxCompetitors(n int) Option {
	return func(s *Service) {
		s.maxCompetitors = n
	}
}

// New creates an analysis service.
func New(places foursquare.Client, opts ...Option) *Service {
	s := &Service{
		places:         places,
		maxCompetitors: 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CompetitorReport is the response body for competitor analysis.
type CompetitorReport struct {
	Competitors  []model.Business           `json:"competitors"`
	Overview     metrics.CompetitorOverview `json:"overview"`
	Density      metrics.DensityReport      `json:"market_density"`
	Competition  metrics.CompetitionReport  `json:"competition"`
	LocationInfo *model.LocationInfo        `json:"location_info"`
	ProcessedAt  string                     `json:"processed_at"`
}

// AnalyzeCompetitors validates the request, fetches and cleans competitor
// records, and runs the competition metrics.
func (s *Service) AnalyzeCompetitors(ctx context.Context, req model.AnalyzeRequest) (*CompetitorReport, error) {
	validated, err := requireLocationAndType(req)
	if err != nil {
		return nil, err
	}

	location := validated.Location.Cleaned
	businessType := validated.BusinessType.Standardized

	raw, err := s.fetchCompetitors(ctx, location, businessType, validated.Radius)
	if err != nil {
		return nil, err
	}

	competitors := clean.Records(raw)
	if len(competitors) > s.maxCompetitors {
		competitors = competitors[:s.maxCompetitors]
	}

	return &CompetitorReport{
		Competitors:  competitors,
		Overview:     metrics.Overview(competitors),
		Density:      metrics.Density(competitors, validated.Radius),
		Competition:  metrics.Competition(competitors, validated.BusinessType.CategoryKeywords),
		LocationInfo: validated.Location,
		ProcessedAt:  validated.ProcessedAt,
	}, nil
}

// HoursReport is the response body for hours optimization.
type HoursReport struct {
	Recommendation recommend.HoursPlan     `json:"recommendation"`
	HoursAnalysis  recommend.HoursAnalysis `json:"hours_analysis"`
	CurrentHours   string                  `json:"current_hours"`
	LocationInfo   *model.LocationInfo     `json:"location_info"`
	BusinessCount  int                     `json:"business_count"`
}

// OptimizeHours validates the request, surveys local business hours, and
// builds the recommended weekly schedule.
func (s *Service) OptimizeHours(ctx context.Context, req model.AnalyzeRequest) (*HoursReport, error) {
	validated, err := requireLocationAndType(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetchLocalBusinesses(ctx, validated.Location.Cleaned, validated.Radius)
	if err != nil {
		return nil, err
	}
	businesses := clean.Records(raw)

	return &HoursReport{
		Recommendation: recommend.Hours(validated.BusinessType.Standardized),
		HoursAnalysis:  recommend.AnalyzeHours(businesses),
		CurrentHours:   req.CurrentHours,
		LocationInfo:   validated.Location,
		BusinessCount:  len(businesses),
	}, nil
}

// ScanParameters echoes the inputs of a market scan.
type ScanParameters struct {
	Radius                  int    `json:"radius"`
	FocusIndustry           string `json:"focus_industry"`
	TotalBusinessesAnalyzed int    `json:"total_businesses_analyzed"`
}

// MarketData combines the upstream overview with derived market scores.
type MarketData struct {
	Overview      foursquare.MarketOverview `json:"overview"`
	Health        metrics.HealthReport      `json:"health"`
	LocationScore metrics.LocationReport    `json:"location_score"`
}

// MarketScan is the response body for market scanning.
type MarketScan struct {
	MarketData    MarketData              `json:"market_data"`
	Opportunities []recommend.Opportunity `json:"opportunities"`
	MarketGaps    []metrics.Gap           `json:"market_gaps"`
	Insights      recommend.Insights      `json:"insights"`
	LocationInfo  *model.LocationInfo     `json:"location_info"`
	ScanParams    ScanParameters          `json:"scan_parameters"`
}

// ScanMarket validates the request, builds the market overview, and derives
// health, gaps, opportunities, and aggregated insights.
func (s *Service) ScanMarket(ctx context.Context, req model.AnalyzeRequest) (*MarketScan, error) {
	validated := validate.Request(req)
	if validated.Location == nil || validated.Location.Cleaned == "" {
		return nil, ErrMissingLocation
	}

	location := validated.Location.Cleaned

	overview, err := s.fetchMarketOverview(ctx, location, validated.Radius)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetchLocalBusinesses(ctx, location, validated.Radius)
	if err != nil {
		return nil, err
	}
	businesses := clean.Records(raw)

	opportunities := recommend.FilterByIndustry(
		recommend.Opportunities(overview.Categories, overview.TotalBusinesses),
		req.FocusIndustry,
	)

	return &MarketScan{
		MarketData: MarketData{
			Overview:      *overview,
			Health:        metrics.Health(businesses),
			LocationScore: metrics.Location(businesses),
		},
		Opportunities: opportunities,
		MarketGaps:    metrics.Gaps(businesses),
		Insights:      recommend.MarketInsights(nil, overview.MarketScore, len(overview.Categories), opportunities),
		LocationInfo:  validated.Location,
		ScanParams: ScanParameters{
			Radius:                  validated.Radius,
			FocusIndustry:           req.FocusIndustry,
			TotalBusinessesAnalyzed: len(businesses),
		},
	}, nil
}

// GenerateReport gathers competitors, the market overview, and the area's
// businesses concurrently, then assembles the comprehensive report.
func (s *Service) GenerateReport(ctx context.Context, req model.AnalyzeRequest) (*recommend.Report, error) {
	validated, err := requireLocationAndType(req)
	if err != nil {
		return nil, err
	}

	location := validated.Location.Cleaned
	businessType := validated.BusinessType.Standardized

	var (
		rawCompetitors []foursquare.Record
		rawBusinesses  []foursquare.Record
		overview       *foursquare.MarketOverview
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		rawCompetitors, fetchErr = s.fetchCompetitors(gctx, location, businessType, validated.Radius)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		rawBusinesses, fetchErr = s.fetchLocalBusinesses(gctx, location, validated.Radius)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		overview, fetchErr = s.fetchMarketOverview(gctx, location, validated.Radius)
		return fetchErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	competitors := clean.Records(rawCompetitors)
	businesses := clean.Records(rawBusinesses)

	competition := metrics.Competition(competitors, validated.BusinessType.CategoryKeywords)

	report := recommend.BuildReport(recommend.ReportInput{
		Competitors:   competitors,
		AllBusinesses: businesses,
		MarketScore:   overview.MarketScore,
		Opportunities: recommend.Opportunities(overview.Categories, overview.TotalBusinesses),
		MarketGaps:    metrics.Gaps(businesses),
		MarketHealth:  metrics.Health(businesses),
		MarketLeaders: competition.MarketLeaders,
	})
	return &report, nil
}

// requireLocationAndType validates a request and rejects missing location or
// business type.
func requireLocationAndType(req model.AnalyzeRequest) (*model.ValidatedRequest, error) {
	validated := validate.Request(req)
	if validated.Location == nil || validated.Location.Cleaned == "" {
		return nil, ErrMissingLocation
	}
	if validated.BusinessType == nil || validated.BusinessType.Standardized == "" {
		return nil, ErrMissingBusinessType
	}
	return validated, nil
}

func (s *Service) fetchCompetitors(ctx context.Context, location, businessType string, radius int) ([]foursquare.Record, error) {
	key := placecache.Key("competitors", location, businessType, radius)
	var records []foursquare.Record
	if s.cacheGet(ctx, key, &records) {
		return records, nil
	}

	records, err := s.places.SearchCompetitors(ctx, location, businessType, radius)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, records)
	return records, nil
}

func (s *Service) fetchLocalBusinesses(ctx context.Context, location string, radius int) ([]foursquare.Record, error) {
	key := placecache.Key("businesses", location, "", radius)
	var records []foursquare.Record
	if s.cacheGet(ctx, key, &records) {
		return records, nil
	}

	records, err := s.places.LocalBusinesses(ctx, location, radius)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, records)
	return records, nil
}

func (s *Service) fetchMarketOverview(ctx context.Context, location string, radius int) (*foursquare.MarketOverview, error) {
	key := placecache.Key("overview", location, "", radius)
	var overview foursquare.MarketOverview
	if s.cacheGet(ctx, key, &overview) {
		return &overview, nil
	}

	fresh, err := s.places.MarketOverview(ctx, location, radius)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, fresh)
	return fresh, nil
}

// cacheGet reports whether dst was filled from cache. Cache failures only
// log; the pipeline falls through to the upstream fetch.
func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		zap.L().Warn("analysis: cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *Service) cachePut(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, key, value, s.cacheTTL); err != nil {
		zap.L().Warn("analysis: cache write failed", zap.String("key", key), zap.Error(err))
	}
}
