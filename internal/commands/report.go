package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/veribal-dev/veribal/internal/balance"
	"github.com/veribal-dev/veribal/internal/importer"
	"github.com/veribal-dev/veribal/internal/kpi"
	"github.com/veribal-dev/veribal/internal/statements"
	"github.com/veribal-dev/veribal/internal/validate"
)

func newReportCommand() *cobra.Command {
	var format string
	var project string
	var force bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Build financial statements and KPIs from a trial balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadProjectConfig(project)

			if !cmd.Flags().Changed("format") && cfg.Import.DefaultFormat != "" {
				format = cfg.Import.DefaultFormat
			}
			opts := validate.Options{
				AggregateDuplicates: cfg.Validation.AggregateDuplicates,
				Tolerance:           cfg.Validation.Tolerance,
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q", format)
			}

			return runReport(cmd.OutOrStdout(), args[0], parser, opts, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "standard", "trial balance file format")
	cmd.Flags().StringVar(&project, "project", ".", "project directory (veribal.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "derive statements even when validation fails")

	return cmd
}

func runReport(out io.Writer, path string, parser importer.Parser, opts validate.Options, force bool) error {
	rows, err := parseFile(path, parser)
	if err != nil {
		return err
	}

	// Statements derived from an invalid batch are untrustworthy, so the
	// report refuses unless forced.
	report := validate.Validate(rows, opts)
	if !report.IsValid {
		printFindings(out, "Errors", report.Errors)
		if !force {
			return fmt.Errorf("trial balance is invalid (%d errors); use --force to report anyway", len(report.Errors))
		}
		fmt.Fprintln(out, "\nWARNING: reporting on an invalid trial balance")
	}

	if opts.AggregateDuplicates {
		rows = balance.NewService(rows).Aggregated()
	}

	bs := statements.BuildBalanceSheet(rows)
	is := statements.BuildIncomeStatement(rows)
	cf := statements.BuildCashFlow(rows)
	ratios := kpi.Derive(bs, is)

	printBalanceSheet(out, bs)
	printIncomeStatement(out, is)
	printCashFlow(out, cf)
	printKPIs(out, ratios)
	return nil
}

func printBalanceSheet(out io.Writer, bs statements.BalanceSheet) {
	fmt.Fprintln(out, "Balance Sheet")
	fmt.Fprintf(out, "  Intangible assets      %14.2f\n", bs.IntangibleAssets)
	fmt.Fprintf(out, "  Tangible assets        %14.2f\n", bs.TangibleAssets)
	fmt.Fprintf(out, "  Financial assets       %14.2f\n", bs.FinancialAssets)
	fmt.Fprintf(out, "  Fixed assets           %14.2f\n", bs.FixedAssets)
	fmt.Fprintf(out, "  Inventory              %14.2f\n", bs.Inventory)
	fmt.Fprintf(out, "  Receivables            %14.2f\n", bs.Receivables)
	fmt.Fprintf(out, "  Cash                   %14.2f\n", bs.Cash)
	fmt.Fprintf(out, "  Current assets         %14.2f\n", bs.CurrentAssets)
	fmt.Fprintf(out, "  TOTAL ASSETS           %14.2f\n", bs.TotalAssets)
	fmt.Fprintf(out, "  Equity                 %14.2f\n", bs.Equity)
	fmt.Fprintf(out, "  Long-term debt         %14.2f\n", bs.LongTermDebt)
	fmt.Fprintf(out, "  Short-term debt        %14.2f\n", bs.ShortTermDebt)
	fmt.Fprintf(out, "  TOTAL LIAB. + EQUITY   %14.2f\n", bs.TotalLiabilitiesAndEquity)
}

func printIncomeStatement(out io.Writer, is statements.IncomeStatement) {
	fmt.Fprintln(out, "\nIncome Statement")
	fmt.Fprintf(out, "  Sales revenue          %14.2f\n", is.SalesRevenue)
	fmt.Fprintf(out, "  Other revenue          %14.2f\n", is.OtherRevenue)
	fmt.Fprintf(out, "  Total revenue          %14.2f\n", is.TotalRevenue)
	fmt.Fprintf(out, "  Material expense       %14.2f\n", is.MaterialExpense)
	fmt.Fprintf(out, "  Personnel expense      %14.2f\n", is.PersonnelExpense)
	fmt.Fprintf(out, "  Other expense          %14.2f\n", is.OtherExpense)
	fmt.Fprintf(out, "  Total expense          %14.2f\n", is.TotalExpense)
	fmt.Fprintf(out, "  Tax                    %14.2f\n", is.Tax)
	fmt.Fprintf(out, "  NET RESULT             %14.2f\n", is.NetResult)
}

func printCashFlow(out io.Writer, cf statements.CashFlowApprox) {
	fmt.Fprintln(out, "\nCash Flow (approximation)")
	fmt.Fprintf(out, "  Opening cash           %14.2f\n", cf.OpeningCash)
	fmt.Fprintf(out, "  Closing cash           %14.2f\n", cf.ClosingCash)
	fmt.Fprintf(out, "  Net change             %14.2f\n", cf.NetChange)
	fmt.Fprintf(out, "  Net result             %14.2f\n", cf.NetResult)
	fmt.Fprintf(out, "  Non-cash delta         %14.2f\n", cf.NonCashDelta)
}

func printKPIs(out io.Writer, k kpi.Set) {
	fmt.Fprintln(out, "\nKPIs")
	fmt.Fprintf(out, "  Current ratio          %14.2f\n", k.CurrentRatio)
	fmt.Fprintf(out, "  Quick ratio            %14.2f\n", k.QuickRatio)
	fmt.Fprintf(out, "  Cash ratio             %14.2f\n", k.CashRatio)
	fmt.Fprintf(out, "  Net margin             %14.2f\n", k.NetMargin)
	fmt.Fprintf(out, "  Return on assets       %14.2f\n", k.ReturnOnAssets)
	fmt.Fprintf(out, "  Return on equity       %14.2f\n", k.ReturnOnEquity)
	fmt.Fprintf(out, "  Debt to equity         %14.2f\n", k.DebtToEquity)
	fmt.Fprintf(out, "  Debt ratio             %14.2f\n", k.DebtRatio)
	fmt.Fprintf(out, "  Asset turnover         %14.2f\n", k.AssetTurnover)
}
