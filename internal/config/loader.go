package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load builds settings from defaults, BUNMIGRATE_* environment variables,
// and any CLI flag bindings registered on the global viper instance.
func Load() (*Settings, error) {
	return load(viper.GetViper())
}

// LoadWithViper builds settings from an explicit viper instance. Tests use
// this to avoid the global instance.
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	return load(v)
}

func load(v *viper.Viper) (*Settings, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
