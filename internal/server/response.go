package server

import (
	"time"

	"github.com/aleister1102/hlsprobe/internal/models"
)

// ExtractResponse is the JSON body of every /api/extract reply.
type ExtractResponse struct {
	Success     bool       `json:"success"`
	URL         string     `json:"url,omitempty"`
	Links       []string   `json:"links,omitempty"`
	PrimaryLink string     `json:"primaryLink,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Error       string     `json:"error,omitempty"`
}

func successResponse(result *models.ExtractionResult) ExtractResponse {
	timestamp := result.Timestamp
	return ExtractResponse{
		Success:     true,
		URL:         result.URL,
		Links:       result.Links,
		PrimaryLink: result.PrimaryLink,
		Timestamp:   &timestamp,
	}
}

func errorResponse(message string) ExtractResponse {
	return ExtractResponse{Success: false, Error: message}
}
