package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/fields"
)

func init() {
	fieldsCmd.AddCommand(fieldsPriorCmd)
	fieldsCmd.AddCommand(fieldsEquivalentCmd)
	rootCmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Query citation field precedence and aliases",
}

// FieldListResult is the JSON output of field queries.
type FieldListResult struct {
	Field  string   `json:"field"`
	Fields []string `json:"fields"`
}

var fieldsPriorCmd = &cobra.Command{
	Use:   "prior <field>",
	Short: "List fields that should precede the given field",
	Long: `List the fields that conventionally precede the given field in a
citation, nearest first. Indexed author fields (last2, first3) expand
to their own chains.

Examples:
  refmend fields prior doi
  refmend fields prior last2`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldsPrior,
}

func runFieldsPrior(cmd *cobra.Command, args []string) error {
	field := strings.ToLower(strings.TrimSpace(args[0]))
	if !fields.Known(field) {
		exitWithError(ExitDataError, "unknown field: %s", field)
	}
	prior := fields.PriorParameters(field)

	if humanOutput {
		outputHuman("%s\n", strings.Join(prior, ", "))
	} else {
		outputJSON(FieldListResult{Field: field, Fields: prior})
	}
	return nil
}

var fieldsEquivalentCmd = &cobra.Command{
	Use:   "equivalent <field>",
	Short: "List fields treated as aliases of the given field",
	Long: `List the fields treated as aliases of the given field for ordering
purposes, the field itself included.

Examples:
  refmend fields equivalent pmid`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldsEquivalent,
}

func runFieldsEquivalent(cmd *cobra.Command, args []string) error {
	field := strings.ToLower(strings.TrimSpace(args[0]))
	if !fields.Known(field) {
		exitWithError(ExitDataError, "unknown field: %s", field)
	}
	equiv := fields.EquivalentParameters(field)

	if humanOutput {
		outputHuman("%s\n", strings.Join(equiv, ", "))
	} else {
		outputJSON(FieldListResult{Field: field, Fields: equiv})
	}
	return nil
}
