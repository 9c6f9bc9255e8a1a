package extractor

import (
	"net/url"

	"github.com/BishopFox/jsluice"
	"github.com/aleister1102/hlsprobe/internal/urlhandler"
	"github.com/rs/zerolog"
)

// JSluiceAnalyzer finds manifest paths in JavaScript string literals, including
// relative ones the URL pattern cannot see, and resolves them against the page.
type JSluiceAnalyzer struct {
	logger zerolog.Logger
}

// NewJSluiceAnalyzer creates a new jsluice analyzer
func NewJSluiceAnalyzer(logger zerolog.Logger) *JSluiceAnalyzer {
	return &JSluiceAnalyzer{
		logger: logger.With().Str("component", "JSluiceAnalyzer").Logger(),
	}
}

// AnalyzeScript returns absolute manifest candidates found in one script body.
func (jsa *JSluiceAnalyzer) AnalyzeScript(script string, base *url.URL) (found []string) {
	if !ContainsManifestMarker(script) {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			jsa.logger.Warn().Interface("panic", r).Msg("jsluice analysis aborted")
			found = nil
		}
	}()

	for _, res := range jsluice.NewAnalyzer([]byte(script)).GetURLs() {
		if !ContainsManifestMarker(res.URL) {
			continue
		}

		resolved, err := urlhandler.ResolveURL(res.URL, base)
		if err != nil {
			jsa.logger.Debug().Err(err).Str("url", res.URL).Msg("Skipping unresolvable literal")
			continue
		}

		jsa.logger.Debug().Str("url", resolved).Str("type", res.Type).Msg("Manifest literal found")
		found = append(found, resolved)
	}
	return found
}
