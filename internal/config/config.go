// Package config handles configuration loading
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hawkins/vecbind/internal/constant"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Profile   string            `mapstructure:"profile"`
	Store     string            `mapstructure:"store"`
	Dir       string            `mapstructure:"dir"`
	Format    string            `mapstructure:"format"`
	DBPath    string            `mapstructure:"db_path"`
	Redis     Redis             `mapstructure:"redis"`
	LogLevel  string            `mapstructure:"log_level"`
	LogFile   string            `mapstructure:"log_file"`
	Overrides []keymap.Override `mapstructure:"overrides"`
}

// Redis holds the connection settings of the shared profile store
type Redis struct {
	Addrs      []string `mapstructure:"addrs"`
	DB         int      `mapstructure:"db"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	MasterName string   `mapstructure:"master_name"`
	Prefix     string   `mapstructure:"prefix"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("profile", constant.DefaultProfile)
	v.SetDefault("store", constant.DefaultStore)
	v.SetDefault("dir", DefaultDir())
	v.SetDefault("format", constant.DefaultFormat)
	v.SetDefault("db_path", DefaultDBPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("redis.addrs", []string{"127.0.0.1:6379"})
	v.SetDefault("redis.prefix", constant.DefaultKeyPrefix)
}

// DefaultDir is where the file store keeps profiles
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+constant.AppName)
	}
	return filepath.Join(dir, constant.AppName, "profiles")
}

// DefaultDBPath is the database file of the bolt store
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+constant.AppName, constant.DefaultDBName)
	}
	return filepath.Join(dir, constant.AppName, constant.DefaultDBName)
}

// Load unmarshals the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.Profile == "" {
		return c, errors.New("profile must not be empty")
	}
	return c, nil
}

// Get retrieves configuration from Viper
func Get() (Config, error) {
	return Load(viper.GetViper())
}

// ParseOverride parses "layer:key=action". The key is a single rune so ":" and
// "=" can be rebound too. An empty action unbinds the key.
func ParseOverride(s string) (keymap.Override, error) {
	layer, rest, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(layer) == "" {
		return keymap.Override{}, fmt.Errorf("override %q: want layer:key=action", s)
	}
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError || !strings.HasPrefix(rest[size:], "=") {
		return keymap.Override{}, fmt.Errorf("override %q: want layer:key=action", s)
	}
	return keymap.Override{
		Layer:  strings.TrimSpace(layer),
		Key:    keymap.Key(rest[:size]),
		Action: keymap.Action(strings.TrimSpace(rest[size+1:])),
	}, nil
}
