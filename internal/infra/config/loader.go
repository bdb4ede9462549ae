package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// FileName is the configuration file looked up from the working directory upward.
const FileName = ".zoneinfo.yaml"

// fileConfig mirrors .zoneinfo.yaml. Environment variables override file values.
type fileConfig struct {
	Zoneinfo struct {
		Data struct {
			Dir     string `yaml:"dir" env:"TZDIR" env-description:"directory of tz source files, empty for the bundled data"`
			Workers int    `yaml:"workers" env:"ZONEINFO_WORKERS" env-description:"files parsed and zones assembled in parallel"`
		} `yaml:"data"`

		Convert struct {
			Optimize bool `yaml:"optimize" env:"ZONEINFO_OPTIMIZE" env-description:"use the per-year transition cache"`
		} `yaml:"convert"`

		Log struct {
			Debug bool   `yaml:"debug" env:"ZONEINFO_DEBUG" env-description:"debug level and source locations in the log"`
			Dir   string `yaml:"dir" env:"ZONEINFO_LOG_DIR" env-description:"log directory, relative to the workspace root"`
		} `yaml:"log"`
	} `yaml:"zoneinfo"`
}

// Load reads the configuration file at path, when path is not empty, then applies the
// environment. Values missing from both keep their defaults. A relative log directory
// is resolved against root.
func Load(path, root string) (domain.Config, error) {
	const op = "config.load"

	var fc fileConfig
	def := domain.DefaultConfig()
	fc.Zoneinfo.Data.Workers = def.Data.Workers
	fc.Zoneinfo.Convert.Optimize = def.Convert.Optimize
	fc.Zoneinfo.Log.Dir = def.Log.Dir

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &fc)
	} else {
		err = cleanenv.ReadEnv(&fc)
	}
	if err != nil {
		return def, &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: path, Err: err}
	}

	cfg := domain.Config{
		Data: domain.DataConfig{
			Dir:     fc.Zoneinfo.Data.Dir,
			Workers: fc.Zoneinfo.Data.Workers,
		},
		Convert: domain.ConvertConfig{Optimize: fc.Zoneinfo.Convert.Optimize},
		Log: domain.LogConfig{
			Debug: fc.Zoneinfo.Log.Debug,
			Dir:   fc.Zoneinfo.Log.Dir,
		},
	}
	if cfg.Data.Workers < 0 {
		return def, &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: path,
			Err: fmt.Errorf("workers must not be negative, got %d", cfg.Data.Workers)}
	}
	if cfg.Log.Dir == "" {
		return def, &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: path, Err: errors.New("empty log dir")}
	}
	if root != "" && !filepath.IsAbs(cfg.Log.Dir) {
		cfg.Log.Dir = filepath.Join(root, cfg.Log.Dir)
	}
	return cfg, nil
}

// Usage describes the environment variables Load reads.
func Usage() (string, error) {
	var fc fileConfig
	return cleanenv.GetDescription(&fc, nil)
}
