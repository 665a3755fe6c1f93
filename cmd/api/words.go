package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Print an amount the way invoices spell it out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := billing.ParseAmount(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", billing.FormatCurrency(amount), billing.AmountInWords(amount))
			return nil
		},
	}
}
