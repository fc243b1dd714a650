package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datapilot-io/datapilot/pkg/config"
	"github.com/datapilot-io/datapilot/pkg/db"
)

var seedConfigFile string

func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the sample warehouse",
		Long:  `Create the sqlite warehouse with the analytics_events_daily sample table so the ask and checks commands have data to work with.`,
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}

	cmd.Flags().StringVar(&seedConfigFile, "config", defaultConfigFile, "Path to config file")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(seedConfigFile)
	if err != nil {
		return err
	}

	warehouse := db.NewWarehouse(settings.WarehousePath)
	rows, err := warehouse.Seed()
	if err != nil {
		return fmt.Errorf("seed warehouse: %w", err)
	}
	printSuccess(fmt.Sprintf("Warehouse %s ready with %d rows", settings.WarehousePath, rows))

	tables, err := warehouse.Tables()
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Tables: %s", strings.Join(tables, ", ")))

	return nil
}
