package domain

// Config represents the zoneinfo configuration loaded from .zoneinfo.yaml and the environment.
type Config struct {
	Data    DataConfig
	Convert ConvertConfig
	Log     LogConfig
}

type DataConfig struct {
	// Dir is a directory of tz source files. Empty means the bundled data.
	Dir string
	// Workers bounds parallel parsing and zone assembly.
	Workers int
}

type ConvertConfig struct {
	Optimize bool
}

type LogConfig struct {
	Debug bool
	Dir   string
}

// DefaultConfig provides sane defaults if .zoneinfo.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Data:    DataConfig{Workers: 4},
		Convert: ConvertConfig{Optimize: true},
		Log:     LogConfig{Dir: ".zoneinfo/logs"},
	}
}
