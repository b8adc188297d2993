package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultColorMode = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: Output{
			Color: defaultColorMode,
		},
	}
}
