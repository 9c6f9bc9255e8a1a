package config

// BrowserConfig defines how the headless browser session is launched and driven
type BrowserConfig struct {
	ChromePath           string   `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty" validate:"omitempty,fileexists"`
	Headless             bool     `json:"headless" yaml:"headless"`
	Stealth              bool     `json:"stealth" yaml:"stealth"`
	UserAgent            string   `json:"user_agent,omitempty" yaml:"user_agent,omitempty" validate:"required"`
	WindowWidth          int      `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"gt=0"`
	WindowHeight         int      `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"gt=0"`
	ExtraArgs            []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty" validate:"dive,required"`
	NavigationTimeout    Duration `json:"navigation_timeout,omitempty" yaml:"navigation_timeout,omitempty" validate:"gt=0"`
	SettleDelay          Duration `json:"settle_delay,omitempty" yaml:"settle_delay,omitempty" validate:"gte=0"`
	BlockedResourceTypes []string `json:"blocked_resource_types,omitempty" yaml:"blocked_resource_types,omitempty" validate:"dive,resourcetype"`
}

// NewDefaultBrowserConfig creates default browser configuration
func NewDefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless:             DefaultBrowserHeadless,
		Stealth:              DefaultBrowserStealth,
		UserAgent:            DefaultBrowserUserAgent,
		WindowWidth:          DefaultBrowserWindowWidth,
		WindowHeight:         DefaultBrowserWindowHeight,
		ExtraArgs:            []string{},
		NavigationTimeout:    Duration(DefaultBrowserNavigationTimeout),
		SettleDelay:          Duration(DefaultBrowserSettleDelay),
		BlockedResourceTypes: append([]string(nil), DefaultBlockedResourceTypes...),
	}
}
