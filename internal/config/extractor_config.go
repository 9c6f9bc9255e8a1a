package config

// ExtractorConfig defines configuration for the in-page content scan
type ExtractorConfig struct {
	PlayerGlobals      []string `json:"player_globals,omitempty" yaml:"player_globals,omitempty" validate:"dive,jsident"`
	StreamAttributes   []string `json:"stream_attributes,omitempty" yaml:"stream_attributes,omitempty" validate:"dive,required"`
	DeepScriptAnalysis bool     `json:"deep_script_analysis" yaml:"deep_script_analysis"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		PlayerGlobals:      append([]string(nil), DefaultPlayerGlobals...),
		StreamAttributes:   append([]string(nil), DefaultStreamAttributes...),
		DeepScriptAnalysis: false,
	}
}
