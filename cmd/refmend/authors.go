package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/text"
)

func init() {
	authorsCmd.AddCommand(authorsSplitCmd)
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Inspect author lists",
}

// AuthorsSplitResult reports how an author string divides into people.
type AuthorsSplitResult struct {
	Input   string   `json:"input"`
	Single  bool     `json:"single"`
	Authors []string `json:"authors"`
}

var authorsSplitCmd = &cobra.Command{
	Use:   "split <authors>",
	Short: "Split an author string into individual authors",
	Long: `Split an author string into individual authors.

A string that plausibly names one person ("Last, First") is kept whole;
lists split on semicolons when present, commas otherwise.

Examples:
  refmend authors split "Watson, J. D.; Crick, F. H. C."
  refmend authors split "Darwin, Charles"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuthorsSplit,
}

func runAuthorsSplit(cmd *cobra.Command, args []string) error {
	in := strings.TrimSpace(strings.Join(args, " "))
	single := text.UnderTwoAuthors(in)
	authors := []string{in}
	if !single {
		authors = text.SplitAuthors(in)
	}

	if humanOutput {
		for _, a := range authors {
			outputHuman("%s\n", a)
		}
	} else {
		outputJSON(AuthorsSplitResult{Input: in, Single: single, Authors: authors})
	}
	return nil
}
