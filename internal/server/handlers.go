package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/localmind/internal/analysis"
	"github.com/sells-group/localmind/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := s.svc.AnalyzeCompetitors(r.Context(), req)
	if err != nil {
		writeAnalysisError(w, err,
			"Location and business type are required",
			"Analysis failed. Please try again or contact support.")
		return
	}
	respondData(w, report)
}

func (s *Server) handleOptimizeHours(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := s.svc.OptimizeHours(r.Context(), req)
	if err != nil {
		writeAnalysisError(w, err,
			"Location and business type are required",
			"Hours optimization failed. Please try again.")
		return
	}
	respondData(w, report)
}

func (s *Server) handleScanMarket(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	scan, err := s.svc.ScanMarket(r.Context(), req)
	if err != nil {
		writeAnalysisError(w, err,
			"Location is required",
			"Market scan failed. Please try again.")
		return
	}
	respondData(w, scan)
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := s.svc.GenerateReport(r.Context(), req)
	if err != nil {
		writeAnalysisError(w, err,
			"Location and business type are required",
			"Report generation failed. Please try again.")
		return
	}
	respondData(w, report)
}

// decodeRequest parses the request body. A missing, malformed, or empty body
// is rejected before the pipeline runs.
func decodeRequest(w http.ResponseWriter, r *http.Request) (model.AnalyzeRequest, bool) {
	var req model.AnalyzeRequest

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		respondError(w, http.StatusBadRequest, "No data provided")
		return req, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "No data provided")
		return req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "No data provided")
		return req, false
	}
	return req, true
}

// writeAnalysisError maps validation failures to a 400 with the endpoint's
// required-parameters message; anything else logs and returns the endpoint's
// generic failure message.
func writeAnalysisError(w http.ResponseWriter, err error, requiredMsg, failedMsg string) {
	if errors.Is(err, analysis.ErrMissingLocation) || errors.Is(err, analysis.ErrMissingBusinessType) {
		respondError(w, http.StatusBadRequest, requiredMsg)
		return
	}
	zap.L().Error("server: analysis failed", zap.Error(err))
	respondError(w, http.StatusInternalServerError, failedMsg)
}
