package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

type (
	// DocumentConfig controls the generated document: base typography,
	// default paragraph geometry and package metadata.
	DocumentConfig struct {
		Title             string  `yaml:"title"`
		Creator           string  `yaml:"creator"`
		BaseFont          string  `yaml:"base_font" validate:"required"`
		EastAsianFont     string  `yaml:"east_asian_font" validate:"required"`
		BaseFontSize      float64 `yaml:"base_font_size" validate:"gt=0"`
		SpacingBefore     float64 `yaml:"spacing_before" validate:"gte=0"`
		SpacingAfter      float64 `yaml:"spacing_after" validate:"gte=0"`
		LineSpacing       float64 `yaml:"line_spacing" validate:"gte=1"`
		Language          string  `yaml:"language" validate:"required,bcp47_language_tag"`
		EastAsianLanguage string  `yaml:"east_asian_language" validate:"required,bcp47_language_tag"`

		FileNameTransliterate bool `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Document DocumentConfig `yaml:"document"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

// Default returns the built-in configuration, suitable when no file is
// supplied.
func Default() *Config {
	return &Config{
		Version: 1,
		Document: DocumentConfig{
			BaseFont:          "Times New Roman",
			EastAsianFont:     "SimSun",
			BaseFontSize:      12,
			SpacingBefore:     6,
			SpacingAfter:      6,
			LineSpacing:       1.5,
			Language:          "en-US",
			EastAsianLanguage: "zh-CN",
		},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
	}
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of built-in defaults and performs
// validation. An empty path yields the validated defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
