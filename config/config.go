// Package config loads terrainpath settings from an optional config file,
// TERRAINPATH_* environment variables and built-in defaults, in that order
// of precedence from lowest to highest: defaults, file, environment.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	// FileName is the config file base name; viper tries every supported extension.
	FileName = "terrainpath"
	// EnvPrefix prefixes environment overrides, e.g. TERRAINPATH_SIZE=17.
	EnvPrefix = "TERRAINPATH"
	// MaxSize is the largest accepted grid side. The all-pairs engine needs
	// two (MaxSize²)² matrices, so 129 would already take several GiB.
	MaxSize = 65
)

// Mission configures one route search over the shared height field.
type Mission struct {
	Strategy string `mapstructure:"strategy" yaml:"strategy" validate:"required,oneof=dijkstra floyd-warshall"`
	Cost     string `mapstructure:"cost" yaml:"cost" validate:"required,oneof=climb climb-descend flat"`
	// Source defaults to cell 0 and Target to the last cell.
	Source *int `mapstructure:"source" yaml:"source,omitempty" validate:"omitempty,min=0"`
	Target *int `mapstructure:"target" yaml:"target,omitempty" validate:"omitempty,min=0"`
}

// Config is the complete runtime configuration.
type Config struct {
	Size         int       `mapstructure:"size" validate:"gridsize"`
	Roughness    int       `mapstructure:"roughness" validate:"min=0"`
	Seed         int64     `mapstructure:"seed"`
	Sample       bool      `mapstructure:"sample"`
	Connectivity string    `mapstructure:"connectivity" validate:"oneof=conn4 conn8"`
	Render       string    `mapstructure:"render" validate:"oneof=ascii numeric"`
	Report       string    `mapstructure:"report" validate:"oneof=text yaml"`
	LogLevel     string    `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Wait         bool      `mapstructure:"wait"`
	MetricsAddr  string    `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
	Missions     []Mission `mapstructure:"missions" validate:"required,min=1,dive"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("size", 33)
	v.SetDefault("roughness", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("sample", false)
	v.SetDefault("connectivity", "conn4")
	v.SetDefault("render", "ascii")
	v.SetDefault("report", "text")
	v.SetDefault("log_level", "info")
	v.SetDefault("wait", false)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("missions", []map[string]any{
		{"strategy": "dijkstra", "cost": "climb"},
		{"strategy": "floyd-warshall", "cost": "climb-descend"},
	})
}

// Load reads FileName.{yaml,json,toml,...} from dir if present, applies
// environment overrides and validates the result. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName(FileName)
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", FileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and reports every failure in plain English.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("gridsize", validateGridSize); err != nil {
		return err
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation("gridsize", trans,
		func(ut ut.Translator) error {
			return ut.Add("gridsize", fmt.Sprintf("{0} must be 2^n + 1 and at most %d (2, 3, 5, 9, 17, 33, 65)", MaxSize), true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("gridsize", fe.Field())
			return t
		},
	)

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, translateError(err, trans))
	}

	return nil
}

// EffectiveRoughness returns Roughness, or 4×Size when unset.
func (c *Config) EffectiveRoughness() int {
	if c.Roughness == 0 {
		return 4 * c.Size
	}

	return c.Roughness
}

func validateGridSize(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= 2 && n <= MaxSize && (n-1)&(n-2) == 0
}

func translateError(err error, trans ut.Translator) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Translate(trans))
	}

	return out
}
