package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/resolve"
)

func init() {
	hdlCmd.AddCommand(hdlCheckCmd)
	rootCmd.AddCommand(hdlCmd)
}

var hdlCmd = &cobra.Command{
	Use:   "hdl",
	Short: "Validate Handle System identifiers",
}

var hdlCheckCmd = &cobra.Command{
	Use:   "check <handle>",
	Short: "Check whether a handle resolves",
	Long: `Check whether a handle resolves, reporting the resolved location
when the resolver redirects.

Examples:
  refmend hdl check 20.500.11850/365038`,
	Args: cobra.ExactArgs(1),
	RunE: runHdlCheck,
}

func runHdlCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadGlobalConfig()
	v := newValidator(cfg)

	id := strings.TrimSpace(args[0])
	location, outcome := v.HdlWorks(cmd.Context(), id)

	if humanOutput {
		if location != "" {
			outputHuman("%s: %s -> %s\n", id, outcome, location)
		} else {
			outputHuman("%s: %s\n", id, outcome)
		}
	} else {
		outputJSON(CheckResult{Identifier: id, Outcome: outcome, Location: location})
	}
	if outcome == resolve.Invalid {
		return fmt.Errorf("handle does not resolve: %s", id)
	}
	return nil
}
