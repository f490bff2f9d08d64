package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/dates"
)

func init() {
	rootCmd.AddCommand(dateCmd)
}

// DateResult pairs a free-text date with its canonical form. Output is
// empty when the input is unusable.
type DateResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

var dateCmd = &cobra.Command{
	Use:   "date <text>",
	Short: "Canonicalize a free-text date",
	Long: `Canonicalize a free-text date to an ISO partial date.

Full dates become YYYY-MM-DD, month precision becomes YYYY-MM, years
stay bare. Ranges use abbreviated ISO 8601 intervals. Epoch artifacts,
placeholder years and ambiguous slash dates that cannot be read either
way come back empty.

Examples:
  refmend date "3 October, 2016"
  refmend date "Jan-Feb 2018"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDate,
}

func runDate(cmd *cobra.Command, args []string) error {
	in := strings.Join(args, " ")
	out := dates.Tidy(in)
	if out == "" {
		exitWithError(ExitNoMatch, "no usable date in %q", in)
	}

	if humanOutput {
		outputHuman("%s\n", out)
	} else {
		outputJSON(DateResult{Input: in, Output: out})
	}
	return nil
}
