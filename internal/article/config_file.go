package article

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema for the engine limits.
// Nested sections map naturally to flags and environment variables.
type FileConfig struct {
	UserAgent string `yaml:"userAgent" json:"userAgent"`

	// Timeout is a duration string ("8s", "500ms"); yaml.v3 has no native
	// duration decoding.
	Fetch struct {
		Timeout string `yaml:"timeout" json:"timeout"`
	} `yaml:"fetch" json:"fetch"`

	Max struct {
		ArticleBytes int64 `yaml:"articleBytes" json:"articleBytes"`
		SummaryBytes int64 `yaml:"summaryBytes" json:"summaryBytes"`
	} `yaml:"max" json:"max"`

	Rank struct {
		Damping    float64 `yaml:"damping" json:"damping"`
		Iterations int     `yaml:"iterations" json:"iterations"`
	} `yaml:"rank" json:"rank"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Extensionless files are
// tried as YAML first, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into cfg for fields still at their
// zero value. Flags should already have been parsed; this lets the file
// supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.UserAgent == "" && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if cfg.ArticleMaxBytes == 0 && fc.Max.ArticleBytes > 0 {
		cfg.ArticleMaxBytes = fc.Max.ArticleBytes
	}
	if cfg.SummaryMaxBytes == 0 && fc.Max.SummaryBytes > 0 {
		cfg.SummaryMaxBytes = fc.Max.SummaryBytes
	}
	if cfg.Damping == 0 && fc.Rank.Damping > 0 {
		cfg.Damping = fc.Rank.Damping
	}
	if cfg.Iterations == 0 && fc.Rank.Iterations > 0 {
		cfg.Iterations = fc.Rank.Iterations
	}
}
