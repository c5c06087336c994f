package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"lead-consolidator/core/dedupe"
	"lead-consolidator/core/logger"
	"lead-consolidator/core/store"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete run configuration, one section per package.
type Config struct {
	// Log holds configuration for the operational logger and the change log.
	Log logger.Config `mapstructure:"log"`
	// Files holds the input and output file locations.
	Files store.Config `mapstructure:"files"`
	// Consolidate holds the matching and merge settings.
	Consolidate dedupe.Config `mapstructure:"consolidate"`
}

// LoadConfig reads dir/.env (when present) into the environment, then builds
// the configuration from struct defaults overridden by SECTION_FIELD
// environment variables, e.g. CONSOLIDATE_KEYS=email,phone.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// registerDefaults walks t and registers every mapstructure-tagged leaf under
// its dotted key with the value of its default tag. Leaves without a default
// are registered empty so AutomaticEnv still resolves them.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
