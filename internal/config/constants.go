package config

import "time"

const (
	// Browser Defaults
	DefaultBrowserUserAgent         = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultBrowserHeadless          = true
	DefaultBrowserStealth           = false
	DefaultBrowserWindowWidth       = 1366
	DefaultBrowserWindowHeight      = 768
	DefaultBrowserNavigationTimeout = 25 * time.Second
	DefaultBrowserSettleDelay       = 5 * time.Second

	// Server Defaults
	DefaultServerListenAddress   = ":8080"
	DefaultServerReadTimeout     = 10 * time.Second
	DefaultServerWriteTimeout    = 90 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultServerMode            = "release"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv overrides the config file lookup.
	ConfigPathEnv = "HLSPROBE_CONFIG_PATH"
)

// DefaultBlockedResourceTypes are aborted by the traffic observer to shorten page loads.
var DefaultBlockedResourceTypes = []string{"Image", "Font", "Stylesheet"}

// DefaultPlayerGlobals are window properties commonly holding player state.
var DefaultPlayerGlobals = []string{
	"jwplayer",
	"videojs",
	"flowplayer",
	"Hls",
	"hls",
	"Clappr",
	"dashjs",
	"shaka",
	"plyr",
	"fluidPlayer",
	"player",
	"videoPlayer",
	"playerConfig",
	"__NEXT_DATA__",
	"__INITIAL_STATE__",
}

// DefaultStreamAttributes are element attributes commonly carrying stream sources.
var DefaultStreamAttributes = []string{"data-src", "data-url", "data-stream", "data-file", "src"}
