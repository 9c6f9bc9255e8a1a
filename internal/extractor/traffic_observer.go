package extractor

import (
	"strings"
	"sync/atomic"

	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/rs/zerolog"
)

// RequestAction tells the session what to do with an intercepted request.
type RequestAction int

const (
	// ActionContinue lets the request proceed unmodified.
	ActionContinue RequestAction = iota
	// ActionBlock aborts the request.
	ActionBlock
)

func (a RequestAction) String() string {
	if a == ActionBlock {
		return "block"
	}
	return "continue"
}

// TrafficObserver records manifest URLs seen in page traffic and decides which
// requests are aborted to shorten the page load.
type TrafficObserver struct {
	links   *LinkSet
	blocked map[string]struct{}
	logger  zerolog.Logger

	requests  atomic.Int64
	responses atomic.Int64
	aborted   atomic.Int64
}

// NewTrafficObserver creates an observer writing into links. blockedTypes are
// CDP resource type names such as "Image"; matching is case-insensitive.
func NewTrafficObserver(links *LinkSet, blockedTypes []string, logger zerolog.Logger) *TrafficObserver {
	blocked := make(map[string]struct{}, len(blockedTypes))
	for _, t := range blockedTypes {
		blocked[strings.ToLower(t)] = struct{}{}
	}
	return &TrafficObserver{
		links:   links,
		blocked: blocked,
		logger:  logger.With().Str("component", "TrafficObserver").Logger(),
	}
}

// OnRequest handles an outgoing request. A manifest URL is recorded even when
// its resource type is blocked; recording never affects the returned action.
func (o *TrafficObserver) OnRequest(requestURL, resourceType string) RequestAction {
	o.requests.Add(1)

	if ContainsManifestMarker(requestURL) {
		if o.links.Add(requestURL, models.SourceNetworkRequest) {
			o.logger.Debug().Str("url", requestURL).Str("resource_type", resourceType).Msg("Manifest request observed")
		}
	}

	if _, blocked := o.blocked[strings.ToLower(resourceType)]; blocked {
		o.aborted.Add(1)
		return ActionBlock
	}
	return ActionContinue
}

// OnResponse handles a received response. The URL is recorded when it contains
// the manifest marker or the content type declares an HLS playlist.
func (o *TrafficObserver) OnResponse(responseURL, contentType string) {
	o.responses.Add(1)

	if ContainsManifestMarker(responseURL) || IsHLSContentType(contentType) {
		if o.links.Add(responseURL, models.SourceNetworkResponse) {
			o.logger.Debug().Str("url", responseURL).Str("content_type", contentType).Msg("Manifest response observed")
		}
	}
}

// ObserverStats is a snapshot of the observer counters.
type ObserverStats struct {
	Requests  int64
	Responses int64
	Aborted   int64
}

// Stats returns the current counters.
func (o *TrafficObserver) Stats() ObserverStats {
	return ObserverStats{
		Requests:  o.requests.Load(),
		Responses: o.responses.Load(),
		Aborted:   o.aborted.Load(),
	}
}
