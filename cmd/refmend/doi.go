package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/doi"
	"github.com/refmend/refmend/internal/pdf"
	"github.com/refmend/refmend/internal/resolve"
)

var (
	doiCheckActive bool
	doiExtractPDF  string
	doiExtractDry  bool
)

func init() {
	doiCheckCmd.Flags().BoolVar(&doiCheckActive, "active", false, "Also require the metadata registry to know the DOI")
	doiExtractCmd.Flags().StringVar(&doiExtractPDF, "pdf", "", "Extract from the first pages of a PDF file")
	doiExtractCmd.Flags().BoolVar(&doiExtractDry, "no-validate", false, "Skip network validation of the candidate")
	doiCmd.AddCommand(doiCheckCmd)
	doiCmd.AddCommand(doiExtractCmd)
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi",
	Short: "Validate and extract DOIs",
}

// CheckResult is the JSON output of identifier checks.
type CheckResult struct {
	Identifier string          `json:"identifier"`
	Outcome    resolve.Outcome `json:"outcome"`
	Location   string          `json:"location,omitempty"`
}

var doiCheckCmd = &cobra.Command{
	Use:   "check <doi>",
	Short: "Check whether a DOI resolves",
	Long: `Check whether a DOI resolves.

The check runs the syntax filter first, the cache second and the
network probe last. An indeterminate outcome means the resolver could
not be reached and the check should be retried later, not that the
DOI is dead.

Examples:
  refmend doi check 10.1038/nature12373
  refmend doi check --active 10.1038/nature12373`,
	Args: cobra.ExactArgs(1),
	RunE: runDOICheck,
}

func runDOICheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadGlobalConfig()
	v := newValidator(cfg)

	id := doi.Sanitize(args[0])
	var outcome resolve.Outcome
	if doiCheckActive {
		outcome = v.DOIActive(cmd.Context(), id)
	} else {
		outcome = v.DOIWorks(cmd.Context(), id)
	}

	if humanOutput {
		outputHuman("%s: %s\n", id, outcome)
	} else {
		outputJSON(CheckResult{Identifier: id, Outcome: outcome})
	}
	if outcome == resolve.Invalid {
		return fmt.Errorf("doi does not resolve: %s", id)
	}
	return nil
}

var doiExtractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract a DOI from free text or a PDF",
	Long: `Extract a DOI from free text or from the first pages of a PDF.

Trailing landing-page noise is stripped and the candidate is shortened
until the resolver confirms a working prefix. Finding nothing is a
normal outcome, reported with a distinct exit code.

Examples:
  refmend doi extract "See https://doi.org/10.1234/abc.pdf for details"
  refmend doi extract --pdf paper.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDOIExtract,
}

func runDOIExtract(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	ctx := cmd.Context()

	if doiExtractPDF == "" && len(args) == 0 {
		return fmt.Errorf("provide text to scan or --pdf")
	}

	var works doi.WorksFunc
	if !doiExtractDry {
		cfg := mustLoadGlobalConfig()
		v := newValidator(cfg)
		works = func(c context.Context, d string) bool {
			return v.DOIWorks(c, d) == resolve.Valid
		}
	}

	var m doi.Match
	var ok bool
	if doiExtractPDF != "" {
		var err error
		m, ok, err = pdf.FindDOI(ctx, doiExtractPDF, works)
		if err != nil {
			exitWithError(ExitDataError, "reading pdf: %v", err)
		}
	} else {
		m, ok = doi.Extract(ctx, works, strings.Join(args, " "))
	}

	if !ok {
		exitWithError(ExitNoMatch, "no DOI found")
	}

	if humanOutput {
		outputHuman("%s\n", m.DOI)
	} else {
		outputJSON(m)
	}
	return nil
}
