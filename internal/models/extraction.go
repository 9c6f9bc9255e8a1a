package models

import "time"

// LinkSource identifies which observation produced a manifest candidate.
type LinkSource string

const (
	SourceNetworkRequest  LinkSource = "network_request"
	SourceNetworkResponse LinkSource = "network_response"
	SourceScript          LinkSource = "script"
	SourcePlayerGlobal    LinkSource = "player_global"
	SourceAttribute       LinkSource = "attribute"
	SourceHTML            LinkSource = "html"
	SourceScriptLiteral   LinkSource = "script_literal"
)

// ExtractionRequest is a single page extraction job.
type ExtractionRequest struct {
	URL string `json:"url"`
}

// ExtractionResult holds the filtered manifest links found on one page.
type ExtractionResult struct {
	URL         string                `json:"url"`
	Links       []string              `json:"links"`
	PrimaryLink string                `json:"primaryLink"`
	Timestamp   time.Time             `json:"timestamp"`
	Sources     map[string]LinkSource `json:"sources,omitempty"`
	DurationMs  int64                 `json:"durationMs"`
}

// NewExtractionResult builds a result. The first link, if any, is the primary link.
func NewExtractionResult(url string, links []string, sources map[string]LinkSource, started time.Time) *ExtractionResult {
	if links == nil {
		links = []string{}
	}

	primary := ""
	if len(links) > 0 {
		primary = links[0]
	}

	now := time.Now().UTC()
	return &ExtractionResult{
		URL:         url,
		Links:       links,
		PrimaryLink: primary,
		Timestamp:   now,
		Sources:     sources,
		DurationMs:  now.Sub(started).Milliseconds(),
	}
}

// IsEmpty reports whether no manifest link survived filtering.
func (r *ExtractionResult) IsEmpty() bool {
	return r == nil || len(r.Links) == 0
}
