package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phonefix-inc/phonefix/internal/interfaces/cli/migrate"
	"github.com/phonefix-inc/phonefix/internal/interfaces/cli/seed"
	"github.com/phonefix-inc/phonefix/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "phonefix",
		Short:        "PhoneFix - parts store and repair desk backend",
		Long:         `PhoneFix serves the storefront, checkout, repair intake and wholesale API, with migration and seeding tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
