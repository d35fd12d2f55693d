package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sells-group/localmind/internal/analysis"
	"github.com/sells-group/localmind/internal/placecache"
	"github.com/sells-group/localmind/pkg/foursquare"
)

// analysisEnv bundles the analysis service with the resources it owns.
type analysisEnv struct {
	Service *analysis.Service
	cache   *placecache.Cache
}

func (e *analysisEnv) Close() {
	if e.cache != nil {
		_ = e.cache.Close()
	}
}

// initAnalysis validates config for the run mode, then wires the places
// client, optional cache, and analysis service.
func initAnalysis(ctx context.Context, mode string) (*analysisEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	places := foursquare.New(cfg.Foursquare.Key,
		foursquare.WithBaseURL(cfg.Foursquare.BaseURL),
		foursquare.WithRateLimit(cfg.Foursquare.RateLimit),
		foursquare.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Foursquare.TimeoutSecs) * time.Second,
		}),
	)

	opts := []analysis.Option{
		analysis.WithMaxCompetitors(cfg.Analysis.MaxCompetitors),
	}

	env := &analysisEnv{}
	if cfg.Cache.Enabled {
		cache, err := placecache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, err
		}
		if err := cache.Migrate(ctx); err != nil {
			cache.Close()
			return nil, err
		}
		env.cache = cache
		opts = append(opts, analysis.WithCache(cache, time.Duration(cfg.Cache.TTLHours)*time.Hour))
	}

	env.Service = analysis.New(places, opts...)
	return env, nil
}
