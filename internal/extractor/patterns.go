package extractor

import (
	"mime"
	"regexp"
	"strings"
)

// ManifestMarker is the substring used for cheap manifest containment checks.
const ManifestMarker = ".m3u8"

// HLS playlist content types, standard and alternate.
const (
	MIMETypeAppleMPEGURL = "application/vnd.apple.mpegurl"
	MIMETypeXMPEGURL     = "application/x-mpegurl"
)

// manifestURLPattern matches absolute http(s) URLs ending in .m3u8 with an
// optional query. Quotes, angle brackets, braces, brackets and whitespace end a match.
var manifestURLPattern = regexp.MustCompile(`https?://[^"'<>{}\[\]\s]+\.m3u8(?:\?[^"'<>{}\[\]\s]*)?`)

// ContainsManifestMarker reports whether s contains ".m3u8".
func ContainsManifestMarker(s string) bool {
	return strings.Contains(s, ManifestMarker)
}

// IsHLSContentType reports whether a Content-Type value declares an HLS playlist.
func IsHLSContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	switch strings.ToLower(mediaType) {
	case MIMETypeAppleMPEGURL, MIMETypeXMPEGURL:
		return true
	default:
		return false
	}
}

// FindManifestURLs returns every manifest URL match in text, in order of appearance.
func FindManifestURLs(text string) []string {
	if !ContainsManifestMarker(text) {
		return nil
	}
	return manifestURLPattern.FindAllString(text, -1)
}
