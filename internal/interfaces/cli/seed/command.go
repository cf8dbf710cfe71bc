package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adagency-io/adagency/internal/infrastructure/config"
	"github.com/adagency-io/adagency/internal/infrastructure/database"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/seeds"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

const defaultSeedFile = "configs/seed.yaml"

var (
	env        string
	configPath string
	seedFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data",
		Long:  `Insert the advertisers, agents, ads, contracts and analytics described in a YAML seed file. Rows that already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", defaultSeedFile, "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	ds, err := seeds.LoadFile(seedFile)
	if err != nil {
		return err
	}

	db, err := database.Open(&cfg.Database, log.Named("database"), database.Options{})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	summary, err := seeds.Apply(cmd.Context(), db, ds)
	if err != nil {
		log.Errorw("seeding failed", "file", seedFile, "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seed data applied",
		"file", seedFile,
		"advertisers", summary.Advertisers,
		"agents", summary.Agents,
		"ads", summary.Ads,
		"contracts", summary.Contracts,
		"analytics", summary.Analytics)

	return nil
}
