package gesture

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config groups detector and handler options loaded from a file.
type Config struct {
	Detector DetectorConfig
	Handler  HandlerConfig
}

// Selectors such as "#canvas" start with a comment character, so only
// whole-line comments are recognised.
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

// DefaultConfig returns the defaults used when a key is absent.
func DefaultConfig() Config {
	return Config{Handler: DefaultHandlerConfig()}
}

// LoadConfigFile reads an INI file:
//
//	[detector]
//	element = #canvas
//
//	[handler]
//	enabled = true
//	rotationFactor = 5
//	sensitivity = 0.005
//	minScale = 0.005
//	maxScale = 0.08
//	verticalRotation = false
//	strategy = ratio
func LoadConfigFile(path string) (Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return configFromINI(f)
}

// ParseConfig parses INI data in the LoadConfigFile format.
func ParseConfig(data []byte) (Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return configFromINI(f)
}

func configFromINI(f *ini.File) (Config, error) {
	cfg := DefaultConfig()

	cfg.Detector.Element = f.Section("detector").Key("element").String()

	sec := f.Section("handler")
	var err error
	if sec.HasKey("enabled") {
		if cfg.Handler.Enabled, err = sec.Key("enabled").Bool(); err != nil {
			return Config{}, fmt.Errorf("parse config: handler.enabled: %w", err)
		}
	}
	if sec.HasKey("verticalRotation") {
		if cfg.Handler.VerticalRotation, err = sec.Key("verticalRotation").Bool(); err != nil {
			return Config{}, fmt.Errorf("parse config: handler.verticalRotation: %w", err)
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"rotationFactor", &cfg.Handler.RotationFactor},
		{"sensitivity", &cfg.Handler.Sensitivity},
		{"minScale", &cfg.Handler.MinScale},
		{"maxScale", &cfg.Handler.MaxScale},
	}
	for _, fl := range floats {
		if !sec.HasKey(fl.key) {
			continue
		}
		v, err := sec.Key(fl.key).Float64()
		if err != nil {
			return Config{}, fmt.Errorf("parse config: handler.%s: %w", fl.key, err)
		}
		*fl.dst = v
	}

	if sec.HasKey("strategy") {
		mode, err := ParseScaleMode(sec.Key("strategy").String())
		if err != nil {
			return Config{}, fmt.Errorf("parse config: handler.strategy: %w", err)
		}
		cfg.Handler.Strategy = mode
	}

	if err := cfg.Handler.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
