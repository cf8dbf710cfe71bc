package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adagency-io/adagency/internal/interfaces/cli/migrate"
	"github.com/adagency-io/adagency/internal/interfaces/cli/seed"
	"github.com/adagency-io/adagency/internal/interfaces/cli/server"
)

// @title AdAgency API
// @version 1.0
// @description CRUD API of an advertising agency: advertisers, agents, ads, contracts and ad analytics.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{
		Use:   "adagency",
		Short: "AdAgency - advertising agency back office",
		Long:  `AdAgency serves the advertising agency API and web front end, and ships migration and seeding tools.`,
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
