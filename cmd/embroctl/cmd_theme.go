package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yogi-fashion/embroidery-service/internal/settings"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved light/dark preference",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the saved theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Load())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Save a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(settings.ThemeDark), string(settings.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		if err := store.Save(settings.Theme(args[0])); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0])
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		next, err := store.Toggle()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)
}

// settingsStore only needs configuration; the theme file lives outside the
// database.
func settingsStore() (*settings.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return settings.NewStore(cfg.Settings.Path), nil
}
