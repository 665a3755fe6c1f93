package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Back office API for a single shop: customers, catalog, orders and invoices",
		Long: `storefront serves the shop's admin API. Configuration comes from a .env
file in the working directory and the process environment.`,
		Example: `  storefront serve
  storefront migrate --seed
  storefront words 1250.50`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand(), newWordsCommand())
	return root
}
