package main

import (
	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/pdf"
)

var pdfTextPages int

func init() {
	pdfTextCmd.Flags().IntVar(&pdfTextPages, "pages", 0, "Number of leading pages to read (0 for all)")
	pdfCmd.AddCommand(pdfTextCmd)
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Read PDF documents",
}

// PDFTextResult carries the extracted plain text of a document.
type PDFTextResult struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

var pdfTextCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "Extract plain text from a PDF",
	Long: `Extract plain text from a PDF.

Reads the leading pages of the document and prints their text, for
piping into other commands. Pages whose text cannot be decoded are
skipped silently.

Examples:
  refmend pdf text paper.pdf
  refmend pdf text --pages 2 --human paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFText,
}

func runPDFText(cmd *cobra.Command, args []string) error {
	text, err := pdf.ExtractText(args[0], pdfTextPages)
	if err != nil {
		exitWithError(ExitDataError, "reading pdf: %v", err)
	}

	if humanOutput {
		outputHuman("%s", text)
	} else {
		outputJSON(PDFTextResult{Path: args[0], Text: text})
	}
	return nil
}
