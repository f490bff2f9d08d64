package main

import (
	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

// ConfigView is the effective configuration after env overrides.
type ConfigView struct {
	Path                 string `json:"path"`
	ContactMail          string `json:"contact_mail,omitempty"`
	ProbeIntervalSeconds int    `json:"probe_interval_seconds"`
	TimeoutSeconds       int    `json:"timeout_seconds"`
	GoodCacheLimit       int    `json:"good_cache_limit"`
	BadCacheLimit        int    `json:"bad_cache_limit"`
	UserAgent            string `json:"user_agent"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration: file values merged with
REFMEND_* environment overrides, plus the defaults filling the gaps.

The file lives at the XDG config path and is created on demand; a
missing file just means defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadGlobalConfig()
	good, bad := cfg.CacheLimits()
	view := ConfigView{
		Path:                 config.GlobalConfigPath(),
		ContactMail:          cfg.ContactMail,
		ProbeIntervalSeconds: int(cfg.ProbeInterval().Seconds()),
		TimeoutSeconds:       int(cfg.Timeout().Seconds()),
		GoodCacheLimit:       good,
		BadCacheLimit:        bad,
		UserAgent:            cfg.UserAgent(),
	}

	if humanOutput {
		outputHuman("config file:     %s\n", view.Path)
		if view.ContactMail != "" {
			outputHuman("contact mail:    %s\n", view.ContactMail)
		}
		outputHuman("probe interval:  %ds\n", view.ProbeIntervalSeconds)
		outputHuman("probe timeout:   %ds\n", view.TimeoutSeconds)
		outputHuman("good cache:      %d\n", view.GoodCacheLimit)
		outputHuman("bad cache:       %d\n", view.BadCacheLimit)
		outputHuman("user agent:      %s\n", view.UserAgent)
		return nil
	}
	return outputJSON(view)
}
