package cli

import (
	"fmt"
	"strings"

	"saleshub-cli/internal/store"

	"github.com/spf13/cobra"
)

var configKeys = []string{"dataDir", "logLevel", "tui.theme"}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the global config (~/.saleshub/config.json)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the global config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"path": path, "config": app.cfg})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config key (" + strings.Join(configKeys, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.cfg
			if cfg == nil {
				cfg = &store.GlobalConfig{}
			}
			if err := setConfigKey(cfg, args[0], strings.TrimSpace(args[1])); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cfg)
		},
	})
	return cmd
}

func setConfigKey(cfg *store.GlobalConfig, key, value string) error {
	switch key {
	case "dataDir":
		cfg.DataDir = value
	case "logLevel":
		switch strings.ToLower(value) {
		case "", "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log level %q (debug|info|warn|error)", value)
		}
	case "tui.theme":
		switch strings.ToLower(value) {
		case "", "auto", "light", "dark":
		default:
			return fmt.Errorf("invalid theme %q (light|dark|auto)", value)
		}
		if cfg.TUI == nil {
			cfg.TUI = &store.TUIConfig{}
		}
		cfg.TUI.Theme = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key %q (%s)", key, strings.Join(configKeys, ", "))
	}
	return nil
}
