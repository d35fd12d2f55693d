package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// envelope is the success wrapper shared by every analysis endpoint.
type envelope struct {
	Success   bool     `json:"success"`
	Timestamp string   `json:"timestamp"`
	Data      any      `json:"data"`
	Metadata  metadata `json:"metadata"`
}

type metadata struct {
	ProcessingTime string   `json:"processing_time"`
	DataSources    []string `json:"data_sources"`
	Version        string   `json:"version"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, envelope{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Metadata: metadata{
			ProcessingTime: "real-time",
			DataSources:    []string{"foursquare_api", "business_intelligence"},
			Version:        "1.0",
		},
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Success: false, Error: message})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}
