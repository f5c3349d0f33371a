package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/veribal-dev/veribal/internal/config"
	"github.com/veribal-dev/veribal/internal/importer"
	"github.com/veribal-dev/veribal/internal/model"
	"github.com/veribal-dev/veribal/internal/period"
	"github.com/veribal-dev/veribal/internal/runlog"
	"github.com/veribal-dev/veribal/internal/validate"
)

func newValidateCommand() *cobra.Command {
	var format string
	var periodID string
	var project string
	var aggregate bool
	var tol float64

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a trial balance file, or every file waiting in import/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadProjectConfig(project)

			if !cmd.Flags().Changed("format") && cfg.Import.DefaultFormat != "" {
				format = cfg.Import.DefaultFormat
			}
			opts := validate.Options{
				AggregateDuplicates: cfg.Validation.AggregateDuplicates,
				Tolerance:           cfg.Validation.Tolerance,
			}
			if cmd.Flags().Changed("aggregate-duplicates") {
				opts.AggregateDuplicates = aggregate
			}
			if cmd.Flags().Changed("tolerance") {
				opts.Tolerance = tol
			}

			if periodID != "" {
				if _, _, err := period.Parse(periodID); err != nil {
					return err
				}
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q", format)
			}

			if len(args) == 0 {
				return runImportScan(cmd.OutOrStdout(), project, parser, opts, periodID)
			}
			return runValidate(cmd.OutOrStdout(), args[0], parser, opts, project, periodID)
		},
	}

	cmd.Flags().StringVar(&format, "format", "standard", "trial balance file format")
	cmd.Flags().StringVar(&periodID, "period", "", "reporting period, e.g. 2025-01")
	cmd.Flags().StringVar(&project, "project", ".", "project directory (veribal.yaml, logs)")
	cmd.Flags().BoolVar(&aggregate, "aggregate-duplicates", false, "treat duplicate codes as mergeable (warning) instead of rejecting (error)")
	cmd.Flags().Float64Var(&tol, "tolerance", 0, "balance tolerance in currency units (0 = default)")

	return cmd
}

// loadProjectConfig returns the project config, or defaults when the project
// directory has none.
func loadProjectConfig(project string) *config.Config {
	cfg, err := config.Load(filepath.Join(project, "veribal.yaml"))
	if err != nil {
		return config.Default("")
	}
	return cfg
}

func runValidate(out io.Writer, path string, parser importer.Parser, opts validate.Options, project, periodID string) error {
	rows, err := parseFile(path, parser)
	if err != nil {
		return err
	}

	report := validate.Validate(rows, opts)
	printReport(out, report)

	if hasProjectConfig(project) {
		entry := runlog.Entry{
			Timestamp: time.Now(),
			Period:    periodID,
			File:      filepath.Base(path),
			Accounts:  report.Totals.AccountsCount,
			Errors:    len(report.Errors),
			Warnings:  len(report.Warnings),
			Info:      len(report.Info),
			Valid:     report.IsValid,
		}
		if err := runlog.Append(project, []runlog.Entry{entry}); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	if !report.IsValid {
		return fmt.Errorf("validation failed: %d errors", len(report.Errors))
	}
	return nil
}

// runImportScan validates every CSV waiting in <project>/import/ and moves
// the valid ones to import/processed/. Invalid files stay put for correction.
func runImportScan(out io.Writer, project string, parser importer.Parser, opts validate.Options, periodID string) error {
	files, err := importer.Scan(project)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No CSV files waiting in import/")
		return nil
	}

	failed := 0
	for _, f := range files {
		fmt.Fprintf(out, "== %s ==\n", f.Name)
		if err := runValidate(out, f.Path, parser, opts, project, periodID); err != nil {
			fmt.Fprintln(out, err)
			failed++
			fmt.Fprintln(out)
			continue
		}
		if err := importer.MarkProcessed(project, f.Name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Moved %s to import/processed/\n\n", f.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(files))
	}
	return nil
}

func parseFile(path string, parser importer.Parser) ([]model.AccountRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

func hasProjectConfig(project string) bool {
	if project == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(project, "veribal.yaml"))
	return err == nil
}

func printReport(out io.Writer, report validate.Report) {
	t := report.Totals
	fmt.Fprintf(out, "Accounts: %d\n", t.AccountsCount)
	fmt.Fprintf(out, "Opening:  %.2f D / %.2f C\n", t.OpeningDebit, t.OpeningCredit)
	fmt.Fprintf(out, "Turnover: %.2f D / %.2f C\n", t.DebitTurnover, t.CreditTurnover)
	fmt.Fprintf(out, "Closing:  %.2f D / %.2f C\n", t.ClosingDebit, t.ClosingCredit)

	printFindings(out, "Errors", report.Errors)
	printFindings(out, "Warnings", report.Warnings)
	printFindings(out, "Info", report.Info)

	if report.IsValid {
		fmt.Fprintln(out, "\nResult: VALID")
	} else {
		fmt.Fprintln(out, "\nResult: INVALID")
	}
}

func printFindings(out io.Writer, label string, findings []validate.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", label)
	for _, f := range findings {
		fmt.Fprintf(out, "  [%s] %s\n", f.Code, f.Message)
	}
}
