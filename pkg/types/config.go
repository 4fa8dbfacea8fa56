package types

// Config represents the configuration for calc-mcp
type Config struct {
	LogLevel string `json:"log_level,omitempty" toml:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file,omitempty" toml:"log_file" yaml:"log_file"`
	Engine   string `json:"engine,omitempty" toml:"engine" yaml:"engine"`
}
