package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	doiCmd.AddCommand(doiJstorCmd)
}

// jstorFields is the one-field container the jstor command hands to the
// validator: it never has a jstor id yet and captures the one added.
type jstorFields struct {
	stable string
}

func (f *jstorFields) Has(field string) bool { return false }

func (f *jstorFields) AddIfNew(field, value string) bool {
	if field != "jstor" || f.stable != "" {
		return false
	}
	f.stable = value
	return true
}

// JSTORResult reports the stable id derived from a 10.2307 DOI.
type JSTORResult struct {
	DOI    string `json:"doi"`
	JSTOR  string `json:"jstor,omitempty"`
	Stable bool   `json:"stable"`
}

var doiJstorCmd = &cobra.Command{
	Use:   "jstor <doi>",
	Short: "Derive a confirmed JSTOR stable id from a 10.2307 DOI",
	Long: `Derive a JSTOR stable id from a 10.2307 DOI, confirming with
JSTOR that the id actually serves a citation before reporting it.

Examples:
  refmend doi jstor 10.2307/1969529`,
	Args: cobra.ExactArgs(1),
	RunE: runDOIJstor,
}

func runDOIJstor(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadGlobalConfig()
	v := newValidator(cfg)

	var f jstorFields
	v.CheckDOIForJSTOR(cmd.Context(), args[0], &f)

	if f.stable == "" {
		exitWithError(ExitNoMatch, "no confirmed JSTOR stable id for %s", args[0])
	}
	if humanOutput {
		outputHuman("%s\n", f.stable)
	} else {
		outputJSON(JSTORResult{DOI: args[0], JSTOR: f.stable, Stable: true})
	}
	return nil
}
