package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refmend/refmend/internal/checklog"
	"github.com/refmend/refmend/internal/doi"
	"github.com/refmend/refmend/internal/resolve"
)

var (
	checkInputPath  string
	checkLogPath    string
	checkRecentN    int
	checkRecentPath string
)

func init() {
	checkCmd.Flags().StringVar(&checkInputPath, "input", "", "File of identifiers, one per line (default stdin)")
	checkCmd.Flags().StringVar(&checkLogPath, "log", "", "SQLite database to record check results in")
	checkRecentCmd.Flags().StringVar(&checkRecentPath, "log", "", "SQLite database to read (required)")
	checkRecentCmd.Flags().IntVarP(&checkRecentN, "limit", "n", 20, "Maximum number of entries to show")
	checkSummaryCmd.Flags().StringVar(&checkRecentPath, "log", "", "SQLite database to read (required)")
	checkCmd.AddCommand(checkRecentCmd)
	checkCmd.AddCommand(checkSummaryCmd)
	rootCmd.AddCommand(checkCmd)
}

// BatchItem is one line of batch check output.
type BatchItem struct {
	Identifier string          `json:"identifier"`
	Kind       string          `json:"kind"`
	Outcome    resolve.Outcome `json:"outcome"`
	Location   string          `json:"location,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Batch-check identifiers from a file or stdin",
	Long: `Batch-check identifiers from a file or stdin, one per line.

Lines starting with "10." are treated as DOIs, lines starting with
"hdl:" (or any other prefix digit sequence) as handles. Blank lines and
"#" comments are skipped. Probes share one throttled connection, so a
long list takes a while; interrupting is safe and already-checked
identifiers stay in this run's output.

With --log, every result is recorded in a SQLite database for later
inspection with "check recent" and "check summary".

Examples:
  refmend check --input dois.txt --log checks.db
  cat dois.txt | refmend check`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadGlobalConfig()
	v := newValidator(cfg)
	ctx := cmd.Context()

	in := os.Stdin
	if checkInputPath != "" {
		f, err := os.Open(checkInputPath)
		if err != nil {
			exitWithError(ExitDataError, "opening input: %v", err)
		}
		defer f.Close()
		in = f
	}

	var log *checklog.DB
	if checkLogPath != "" {
		var err error
		log, err = checklog.Open(checkLogPath)
		if err != nil {
			exitWithError(ExitDataError, "opening log: %v", err)
		}
		defer log.Close()
	}

	var results []BatchItem
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Stop cleanly between probes when interrupted.
		if ctx.Err() != nil {
			break
		}

		item := checkOne(cmd, v, line)
		if log != nil {
			if err := log.Record(item.Identifier, item.Kind, item.Outcome.String(), item.Location); err != nil {
				fmt.Fprintf(os.Stderr, "warning: recording %s: %v\n", item.Identifier, err)
			}
		}
		if humanOutput {
			outputHuman("%s (%s): %s\n", item.Identifier, item.Kind, item.Outcome)
		} else {
			results = append(results, item)
		}
	}
	if err := scanner.Err(); err != nil {
		exitWithError(ExitDataError, "reading input: %v", err)
	}

	if !humanOutput {
		outputJSON(results)
	}
	return nil
}

func checkOne(cmd *cobra.Command, v *resolve.Validator, line string) BatchItem {
	ctx := cmd.Context()
	switch {
	case strings.HasPrefix(line, "hdl:"):
		id := strings.TrimPrefix(line, "hdl:")
		location, outcome := v.HdlWorks(ctx, id)
		return BatchItem{Identifier: id, Kind: "hdl", Outcome: outcome, Location: location}
	case strings.HasPrefix(line, "10."):
		id := doi.Sanitize(line)
		return BatchItem{Identifier: id, Kind: "doi", Outcome: v.DOIWorks(ctx, id)}
	default:
		location, outcome := v.HdlWorks(ctx, line)
		return BatchItem{Identifier: line, Kind: "hdl", Outcome: outcome, Location: location}
	}
}

var checkRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent recorded checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkRecentPath == "" {
			return fmt.Errorf("--log is required")
		}
		log, err := checklog.Open(checkRecentPath)
		if err != nil {
			exitWithError(ExitDataError, "opening log: %v", err)
		}
		defer log.Close()

		entries, err := log.Recent(checkRecentN)
		if err != nil {
			exitWithError(ExitDataError, "reading log: %v", err)
		}
		if humanOutput {
			for _, e := range entries {
				outputHuman("%s  %-4s %-13s %s\n", e.CheckedAt, e.Kind, e.Outcome, e.Identifier)
			}
			return nil
		}
		return outputJSON(entries)
	},
}

var checkSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize recorded checks by outcome",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkRecentPath == "" {
			return fmt.Errorf("--log is required")
		}
		log, err := checklog.Open(checkRecentPath)
		if err != nil {
			exitWithError(ExitDataError, "opening log: %v", err)
		}
		defer log.Close()

		counts, err := log.Summary()
		if err != nil {
			exitWithError(ExitDataError, "reading log: %v", err)
		}
		if humanOutput {
			for outcome, n := range counts {
				outputHuman("%-13s %d\n", outcome, n)
			}
			return nil
		}
		return outputJSON(counts)
	},
}
