// Package main provides the refmend CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/config"
	"github.com/refmend/refmend/internal/resolve"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	// Batch commands stop between probes on interrupt instead of mid-request.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refmend",
	Short: "Citation identifier validation and string normalization",
	Long: `refmend validates and repairs the raw material of citations.

Core features:
  - DOI and handle validation against the live resolvers, with caching,
    throttling and retry so repeated checks stay cheap and polite
  - DOI extraction from free text and from PDF first pages
  - Title capitalization, normalization and same-work comparison
  - Free-text date canonicalization
  - Citation field precedence and alias queries

All commands output JSON by default for pipeline integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustLoadGlobalConfig loads configuration, exits on error.
func mustLoadGlobalConfig() *config.GlobalConfig {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newValidator builds the live validator from global config. One validator
// per invocation: the cache and throttle live and die with the process.
func newValidator(cfg *config.GlobalConfig) *resolve.Validator {
	good, bad := cfg.CacheLimits()
	prober := resolve.NewHTTPProber(
		resolve.WithProbeInterval(cfg.ProbeInterval()),
		resolve.WithTimeout(cfg.Timeout()),
		resolve.WithUserAgent(cfg.UserAgent()),
	)
	return resolve.NewValidator(resolve.NewCacheWithLimits(good, bad), prober)
}
