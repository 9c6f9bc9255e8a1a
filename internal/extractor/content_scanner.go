package extractor

import (
	"net/url"

	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/rs/zerolog"
)

// Candidate is an unvalidated manifest link and the pass that produced it.
type Candidate struct {
	Link   string
	Source models.LinkSource
}

// ContentScanner harvests manifest candidates from a PageSnapshot. It is
// recall oriented; precision is left to FilterManifestLinks.
type ContentScanner struct {
	cfg     config.ExtractorConfig
	jsluice *JSluiceAnalyzer
	logger  zerolog.Logger
}

// NewContentScanner creates a scanner for the configured globals and attributes
func NewContentScanner(cfg config.ExtractorConfig, logger zerolog.Logger) *ContentScanner {
	cs := &ContentScanner{
		cfg:    cfg,
		logger: logger.With().Str("component", "ContentScanner").Logger(),
	}
	if cfg.DeepScriptAnalysis {
		cs.jsluice = NewJSluiceAnalyzer(logger)
	}
	return cs
}

// SnapshotOptions returns the options passed to the in-page read.
func (cs *ContentScanner) SnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		PlayerGlobals:    cs.cfg.PlayerGlobals,
		StreamAttributes: cs.cfg.StreamAttributes,
	}
}

// Scan runs the script, player global, attribute and raw HTML passes (plus the
// optional jsluice pass) and returns the deduplicated candidates in pass order.
func (cs *ContentScanner) Scan(snapshot *PageSnapshot, pageURL string) []Candidate {
	if snapshot == nil {
		return nil
	}

	set := NewLinkSet()
	counts := make(map[models.LinkSource]int)
	add := func(links []string, source models.LinkSource) {
		counts[source] += set.AddAll(links, source)
	}

	for _, script := range snapshot.Scripts {
		add(FindManifestURLs(script), models.SourceScript)
	}

	for _, name := range cs.cfg.PlayerGlobals {
		if value, ok := snapshot.Globals[name]; ok {
			add(FindManifestURLs(value), models.SourcePlayerGlobal)
		}
	}

	for _, value := range snapshot.Attributes {
		if ContainsManifestMarker(value) {
			add([]string{value}, models.SourceAttribute)
		}
	}

	add(FindManifestURLs(snapshot.HTML), models.SourceHTML)

	if cs.jsluice != nil {
		base, err := url.Parse(pageURL)
		if err != nil || !base.IsAbs() {
			base = nil
		}
		for _, script := range snapshot.Scripts {
			add(cs.jsluice.AnalyzeScript(script, base), models.SourceScriptLiteral)
		}
	}

	if len(snapshot.GlobalErrors) > 0 {
		cs.logger.Debug().Strs("globals", snapshot.GlobalErrors).Msg("Skipped unreadable player globals")
	}

	cs.logger.Debug().
		Int("script", counts[models.SourceScript]).
		Int("player_global", counts[models.SourcePlayerGlobal]).
		Int("attribute", counts[models.SourceAttribute]).
		Int("html", counts[models.SourceHTML]).
		Int("script_literal", counts[models.SourceScriptLiteral]).
		Msg("Content scan finished")

	links := set.Links()
	candidates := make([]Candidate, 0, len(links))
	for _, link := range links {
		source, _ := set.Source(link)
		candidates = append(candidates, Candidate{Link: link, Source: source})
	}
	return candidates
}
