// Package cmd wires the vecbind command line. Running without a subcommand
// opens the interactive browser.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hawkins/vecbind/internal/config"
	"github.com/hawkins/vecbind/internal/constant"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

// cli holds the state shared by every subcommand of one root command. Each
// root gets its own viper instance so tests can build fresh ones.
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	config.SetDefaults(c.v)

	cmd := &cobra.Command{
		Use:   constant.AppName,
		Short: "Keybindings for a vector drawing tool",
		Long: `vecbind manages the keyboard bindings of a vector drawing tool.

A profile is a set of layers: the base layer holds the keys pressed on
their own, modifier layers hold the keys pressed with ctrl or alt. Keys
the active layer does not bind do nothing.

Running without a subcommand opens the interactive browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.vecbind.yaml)")
	flags.StringP("profile", "p", constant.DefaultProfile, "profile to use")
	flags.String("store", constant.DefaultStore, `profile store: "file", "bolt" or "redis"`)
	flags.String("dir", "", "profile directory of the file store")
	flags.String("format", constant.DefaultFormat, "document format of the file store: json, yaml or toml")
	flags.String("db", "", "database file of the bolt store")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.StringArrayP("bind", "b", nil, "rebind a key for this run, as layer:key=action (repeatable)")

	for key, flag := range map[string]string{
		"profile":   "profile",
		"store":     "store",
		"dir":       "dir",
		"format":    "format",
		"db_path":   "db",
		"log_level": "log-level",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(
		newLookupCmd(c),
		newKeyForCmd(c),
		newListCmd(c),
		newFindCmd(c),
		newCheckCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newProfilesCmd(c),
		newVersionCmd(),
	)

	return cmd
}

// init reads the config file and environment, then applies --bind flags
func (c *cli) init(cmd *cobra.Command) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(home)
		}
		c.v.SetConfigName("." + constant.AppName)
		c.v.SetConfigType("yaml")
	}
	c.v.SetEnvPrefix(constant.EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	logging.SetLevel(cfg.LogLevel)
	if used := c.v.ConfigFileUsed(); used != "" {
		logging.Debugf("config file: %s", used)
	}

	binds, err := cmd.Flags().GetStringArray("bind")
	if err != nil {
		return err
	}
	for _, b := range binds {
		o, err := config.ParseOverride(b)
		if err != nil {
			return err
		}
		cfg.Overrides = append(cfg.Overrides, o)
	}

	c.cfg = cfg
	return nil
}

func (c *cli) openStore() (store.Store, error) {
	return store.Open(c.cfg)
}

// keymap resolves the configured profile with its overrides applied
func (c *cli) keymap(ctx context.Context, s store.Store) (*keymap.Keymap, error) {
	return store.Resolve(ctx, s, c.cfg.Profile, c.cfg.Overrides)
}

// withKeymap opens the store, resolves the profile and hands both to fn
func (c *cli) withKeymap(cmd *cobra.Command, fn func(store.Store, *keymap.Keymap) error) error {
	s, err := c.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	km, err := c.keymap(cmd.Context(), s)
	if err != nil {
		return err
	}
	return fn(s, km)
}
