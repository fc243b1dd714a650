package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datapilot-io/datapilot/pkg/config"
	"github.com/datapilot-io/datapilot/pkg/db"
	"github.com/datapilot-io/datapilot/pkg/formatter"
	"github.com/datapilot-io/datapilot/pkg/model"
	"github.com/datapilot-io/datapilot/pkg/quality"
)

var (
	checksConfigFile string
	checksOutput     string
	checksColumns    []string
)

func NewChecksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checks TABLE",
		Short: "Suggest data-quality checks for a table",
		Long: `Generate data-quality check suggestions for a table schema.

The schema is read from the warehouse when the table exists there, or can
be given explicitly with repeated -c flags (kept in the order supplied).

Examples:
  # Use the warehouse schema
  datapilot checks analytics_events_daily

  # Supply the schema by hand
  datapilot checks events -c event_date:DATE -c event_count:INTEGER`,
		Args: cobra.ExactArgs(1),
		RunE: runChecks,
	}

	cmd.Flags().StringVar(&checksConfigFile, "config", defaultConfigFile, "Path to config file")
	cmd.Flags().StringVarP(&checksOutput, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringSliceVarP(&checksColumns, "column", "c", []string{}, "Column as name:type (repeatable, ordered)")

	return cmd
}

func runChecks(cmd *cobra.Command, args []string) error {
	tableName := args[0]

	settings, err := config.Load(checksConfigFile)
	if err != nil {
		return err
	}

	schema, err := resolveSchema(settings, tableName)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🧪 Quality Check Advisor")
	fmt.Printf("📝 Table: %s (%d columns)\n", tableName, len(schema))
	fmt.Println()

	s := newSpinner("Connecting to language model...")
	s.Start()
	client, err := connectLLM(settings, false)
	if err != nil {
		s.Stop()
		return err
	}
	s.Stop()
	printSuccess("Language model ready")

	s.Suffix = " Generating quality checks..."
	s.Start()
	report := quality.New(client).SuggestChecks(tableName, schema)
	s.Stop()

	if report.Success {
		printSuccess(fmt.Sprintf("Generated %d checks", report.CheckCount))
	} else {
		printError("Check generation failed")
	}

	return formatter.DisplayQualityReport(report, checksOutput)
}

// resolveSchema prefers explicit -c columns and falls back to warehouse
// introspection.
func resolveSchema(settings config.Settings, tableName string) ([]model.Column, error) {
	if len(checksColumns) > 0 {
		schema := make([]model.Column, 0, len(checksColumns))
		for _, arg := range checksColumns {
			parts := strings.SplitN(arg, ":", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return nil, fmt.Errorf("invalid column %q (expected name:type)", arg)
			}
			schema = append(schema, model.Column{Name: parts[0], Type: parts[1]})
		}
		return schema, nil
	}

	schema, err := db.NewWarehouse(settings.WarehousePath).Describe(tableName)
	if err != nil {
		return nil, fmt.Errorf("read schema for %s: %w", tableName, err)
	}
	if len(schema) == 0 {
		return nil, fmt.Errorf("table %s has no columns in the warehouse (use -c to supply a schema)", tableName)
	}
	return schema, nil
}
