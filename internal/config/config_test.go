package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithViper_Defaults(t *testing.T) {
	s, err := LoadWithViper(viper.New())

	require.NoError(t, err)
	assert.False(t, s.Verbose)
	assert.Equal(t, DefaultLogLevel, s.Logging.Level)
	assert.Equal(t, DefaultLogFormat, s.Logging.Format)
}

func TestLoadWithViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("verbose", true)
	v.Set("logging.level", "debug")
	v.Set("logging.format", "json")

	s, err := LoadWithViper(v)

	require.NoError(t, err)
	assert.True(t, s.Verbose)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
}

func TestLoadWithViper_Environment(t *testing.T) {
	t.Setenv("BUNMIGRATE_LOGGING_LEVEL", "error")

	s, err := LoadWithViper(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "error", s.Logging.Level)
}

func TestLoadWithViper_InvalidLevel(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "loud")

	s, err := LoadWithViper(v)

	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestSettings_Validate(t *testing.T) {
	s := &Settings{}
	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultLogLevel, s.Logging.Level)
	assert.Equal(t, DefaultLogFormat, s.Logging.Format)

	s = &Settings{Logging: LoggingSettings{Level: "info", Format: "json"}}
	require.NoError(t, s.Validate())
	assert.Equal(t, "info", s.Logging.Level)

	s = &Settings{Logging: LoggingSettings{Format: "xml"}}
	assert.Error(t, s.Validate())
}
