package urlhandler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTargetURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "https page", input: "https://example.com/watch?v=1", expected: "https://example.com/watch?v=1"},
		{name: "trims whitespace", input: "  http://example.com  ", expected: "http://example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "free text", input: "not a url", wantErr: true},
		{name: "relative path", input: "/watch", wantErr: true},
		{name: "ftp scheme", input: "ftp://example.com/file", wantErr: true},
		{name: "javascript scheme", input: "javascript:alert(1)", wantErr: true},
		{name: "missing host", input: "https:///path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTargetURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://cdn.example.com/index.m3u8"))
	assert.False(t, IsAbsoluteURL("/live/index.m3u8"))
	assert.False(t, IsAbsoluteURL("not a url"))
	assert.False(t, IsAbsoluteURL("%zz"))
}

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://example.com/videos/page.html")
	require.NoError(t, err)

	resolved, err := ResolveURL("hls/master.m3u8", base)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/videos/hls/master.m3u8", resolved)

	resolved, err = ResolveURL("//cdn.example.com/live.m3u8", base)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/live.m3u8", resolved)

	_, err = ResolveURL("relative.m3u8", nil)
	assert.Error(t, err)

	_, err = ResolveURL("   ", base)
	assert.Error(t, err)
}
