package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veribal-dev/veribal/internal/balance"
	"github.com/veribal-dev/veribal/internal/classify"
)

func newAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account <file> <code>",
		Short: "Show one account from a standard-format trial balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccount(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runAccount(out io.Writer, path, code string) error {
	svc, err := balance.Load(path)
	if err != nil {
		return err
	}
	if !svc.Exists(code) {
		return fmt.Errorf("account %s not found in %s", code, path)
	}

	r, _ := svc.Get(code)
	class := classify.For(r.Code)

	fmt.Fprintf(out, "Account %s (%s)\n", r.Code, r.Name)
	fmt.Fprintf(out, "  Class:    %s\n", class)
	fmt.Fprintf(out, "  Opening:  %.2f D / %.2f C\n", r.OpeningDebit, r.OpeningCredit)
	fmt.Fprintf(out, "  Turnover: %.2f D / %.2f C\n", r.DebitTurnover, r.CreditTurnover)
	fmt.Fprintf(out, "  Closing:  %.2f D / %.2f C\n", r.ClosingDebit, r.ClosingCredit)

	var peers []string
	for _, p := range svc.ByClass(class) {
		if p.Code != r.Code {
			peers = append(peers, p.Code)
		}
	}
	if len(peers) > 0 {
		fmt.Fprintf(out, "  Same class: %s\n", strings.Join(peers, ", "))
	}
	return nil
}
