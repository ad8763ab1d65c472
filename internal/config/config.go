// Package config loads kude settings from flags, KUDE_* env vars and an optional kude.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rezonia/kude/internal/logging"
)

// EnvPrefix for environment overrides, e.g. KUDE_TEMPLATE_DIR
const EnvPrefix = "KUDE"

// DefaultXML is used when no input argument is given
const DefaultXML = "Extructura xml_DE.xml"

// Keys
const (
	KeyTemplateDir          = "template_dir"
	KeyOutputDir            = "output_dir"
	KeyDefaultXML           = "default_xml"
	KeyLogLevel             = "log_level"
	KeyLogFormat            = "log_format"
	KeyVerifyOutput         = "verify_output"
	KeyTolerateRenderErrors = "tolerate_render_errors"
)

// Config holds the resolved settings
type Config struct {
	TemplateDir          string `mapstructure:"template_dir" yaml:"template_dir"`
	OutputDir            string `mapstructure:"output_dir" yaml:"output_dir"`
	DefaultXML           string `mapstructure:"default_xml" yaml:"default_xml"`
	LogLevel             string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat            string `mapstructure:"log_format" yaml:"log_format"`
	VerifyOutput         bool   `mapstructure:"verify_output" yaml:"verify_output"`
	TolerateRenderErrors bool   `mapstructure:"tolerate_render_errors" yaml:"tolerate_render_errors"`
}

// New returns a viper instance with defaults and env binding set up
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTemplateDir, "")
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyDefaultXML, DefaultXML)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
	v.SetDefault(KeyVerifyOutput, false)
	v.SetDefault(KeyTolerateRenderErrors, false)
}

// Load reads the config file and unmarshals all sources.
// An explicit file must exist; otherwise kude.yaml is looked up in the
// working directory and $HOME/.kude and may be absent.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("kude")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.kude")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.LogFormat)
	}
	return nil
}
