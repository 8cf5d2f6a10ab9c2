package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/config"
)

func newConfigCmd() *cobra.Command {
	var (
		setURL      string
		setLanguage string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update client settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			if cmd.Flags().Changed("set-url") {
				cfg.API.BaseURL = setURL
				changed = true
			}
			if cmd.Flags().Changed("set-language") {
				cfg.Defaults.Language = setLanguage
				changed = true
			}
			if changed {
				if err := config.Save(cfg); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				ok("Config written to %s", config.ActivePath())
			}

			header("Settings")
			fmt.Printf("  %-12s %s\n", "server", cfg.API.BaseURL)
			fmt.Printf("  %-12s %s\n", "language", orDash(cfg.Defaults.Language))
			fmt.Printf("  %-12s %s\n", "cache dir", cfg.Defaults.CacheDir)
			fmt.Printf("  %-12s %s\n", "token path", cfg.Defaults.TokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&setURL, "set-url", "", "Set the server base URL")
	cmd.Flags().StringVar(&setLanguage, "set-language", "", "Set the default metadata language")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
