package extractor

import (
	"net/url"
	"strings"

	"github.com/aleister1102/hlsprobe/internal/urlhandler"
)

// IsManifestURL reports whether link, once trimmed, is an absolute URL (scheme
// and host) whose path contains the manifest marker. A marker that only appears
// in the query or fragment does not count.
func IsManifestURL(link string) bool {
	link = strings.TrimSpace(link)
	if !urlhandler.IsAbsoluteURL(link) {
		return false
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Path, ManifestMarker)
}

// FilterManifestLinks keeps the links accepted by IsManifestURL, trimmed and in
// order. Malformed candidates are dropped silently. Applying it twice yields
// the same list.
func FilterManifestLinks(links []string) []string {
	filtered := make([]string, 0, len(links))
	for _, link := range links {
		if IsManifestURL(link) {
			filtered = append(filtered, strings.TrimSpace(link))
		}
	}
	return filtered
}
