package extractor

import (
	"context"
	"time"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/aleister1102/hlsprobe/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Extractor renders one page per call and returns the manifest links found in
// its traffic and content.
type Extractor struct {
	launcher SessionLauncher
	scanner  *ContentScanner
	browser  config.BrowserConfig
	logger   zerolog.Logger
}

// NewExtractor wires an extractor from configuration
func NewExtractor(launcher SessionLauncher, browserCfg config.BrowserConfig, extractorCfg config.ExtractorConfig, logger zerolog.Logger) *Extractor {
	return &Extractor{
		launcher: launcher,
		scanner:  NewContentScanner(extractorCfg, logger),
		browser:  browserCfg,
		logger:   logger.With().Str("component", "Extractor").Logger(),
	}
}

// Extract runs launch, observed navigation, settle delay, content scan, merge
// and filter. The session is closed on every return path. An empty result is
// not an error.
func (e *Extractor) Extract(ctx context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error) {
	started := time.Now()

	pageURL, err := urlhandler.ValidateTargetURL(req.URL)
	if err != nil {
		return nil, common.NewValidationError("url", req.URL, err.Error())
	}

	log := e.logger.With().Str("url", pageURL).Logger()
	log.Info().Msg("Starting extraction")

	session, err := e.launcher.Launch(ctx)
	if err != nil {
		return nil, newExtractionError(StageLaunch, pageURL, err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Browser session teardown reported errors")
		}
	}()

	links := NewLinkSet()
	observer := NewTrafficObserver(links, e.browser.BlockedResourceTypes, log)
	if err := session.Observe(observer); err != nil {
		return nil, newExtractionError(StageLaunch, pageURL, err)
	}

	if err := session.Navigate(ctx, pageURL, e.browser.NavigationTimeout.Std()); err != nil {
		return nil, newExtractionError(StageNavigation, pageURL, err)
	}

	if err := e.settle(ctx); err != nil {
		return nil, newExtractionError(StageSettle, pageURL, err)
	}

	snapshot, err := session.Snapshot(ctx, e.scanner.SnapshotOptions())
	if err != nil {
		return nil, newExtractionError(StageEvaluation, pageURL, err)
	}

	for _, candidate := range e.scanner.Scan(snapshot, pageURL) {
		links.Add(candidate.Link, candidate.Source)
	}

	filtered := FilterManifestLinks(links.Links())
	sources := make(map[string]models.LinkSource, len(filtered))
	for _, link := range filtered {
		if source, ok := links.Source(link); ok {
			sources[link] = source
		}
	}

	stats := observer.Stats()
	log.Info().
		Int("candidates", links.Len()).
		Int("links", len(filtered)).
		Int64("requests", stats.Requests).
		Int64("aborted", stats.Aborted).
		Dur("elapsed", time.Since(started)).
		Msg("Extraction finished")

	return models.NewExtractionResult(pageURL, filtered, sources, started), nil
}

// settle waits the fixed settle delay so deferred scripts can populate state.
func (e *Extractor) settle(ctx context.Context) error {
	delay := e.browser.SettleDelay.Std()
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
