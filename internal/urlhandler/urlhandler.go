package urlhandler

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURLFormat checks that rawURL parses as a request URI.
func ValidateURLFormat(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("URL is empty")
	}

	_, err := url.ParseRequestURI(trimmedURL)
	if err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmedURL, err)
	}

	return nil
}

// IsAbsoluteURL reports whether rawURL carries both a scheme and a host.
func IsAbsoluteURL(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// ValidateTargetURL checks a page URL supplied by a caller and returns it trimmed.
// Only absolute http and https URLs with a host can be rendered.
func ValidateTargetURL(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if err := ValidateURLFormat(trimmedURL); err != nil {
		return "", WrapError(err, "target URL rejected")
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", WrapError(err, "target URL rejected")
	}

	switch strings.ToLower(parsedURL.Scheme) {
	case "http", "https":
	default:
		return "", NewError(fmt.Sprintf("unsupported URL scheme '%s'", parsedURL.Scheme))
	}

	if parsedURL.Host == "" {
		return "", NewError("URL lacks a valid hostname")
	}

	return trimmedURL, nil
}

// ResolveURL resolves a (possibly relative) URL string against a base URL.
func ResolveURL(href string, base *url.URL) (string, error) {
	trimmedHref := strings.TrimSpace(href)
	if trimmedHref == "" {
		return "", fmt.Errorf("href is empty")
	}

	if base == nil {
		parsedHref, err := url.Parse(trimmedHref)
		if err != nil {
			return "", fmt.Errorf("error parsing base-less href '%s': %w", trimmedHref, err)
		}
		if !parsedHref.IsAbs() {
			return "", fmt.Errorf("cannot process relative URL '%s' without a base URL", trimmedHref)
		}
		return parsedHref.String(), nil
	}

	resolved, err := base.Parse(trimmedHref)
	if err != nil {
		return "", fmt.Errorf("error resolving href '%s' with base '%s': %w", trimmedHref, base.String(), err)
	}

	return resolved.String(), nil
}
