package config

// ServerConfig defines the HTTP boundary
type ServerConfig struct {
	ListenAddress   string   `json:"listen_address,omitempty" yaml:"listen_address,omitempty" validate:"required,listenaddr"`
	ReadTimeout     Duration `json:"read_timeout,omitempty" yaml:"read_timeout,omitempty" validate:"gt=0"`
	WriteTimeout    Duration `json:"write_timeout,omitempty" yaml:"write_timeout,omitempty" validate:"gt=0"`
	ShutdownTimeout Duration `json:"shutdown_timeout,omitempty" yaml:"shutdown_timeout,omitempty" validate:"gt=0"`
	Mode            string   `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=debug release test"`
}

// NewDefaultServerConfig creates default server configuration
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddress:   DefaultServerListenAddress,
		ReadTimeout:     Duration(DefaultServerReadTimeout),
		WriteTimeout:    Duration(DefaultServerWriteTimeout),
		ShutdownTimeout: Duration(DefaultServerShutdownTimeout),
		Mode:            DefaultServerMode,
	}
}
