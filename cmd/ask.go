package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datapilot-io/datapilot/pkg/config"
	"github.com/datapilot-io/datapilot/pkg/db"
	"github.com/datapilot-io/datapilot/pkg/formatter"
	"github.com/datapilot-io/datapilot/pkg/sqlgen"
)

var (
	askConfigFile string
	askOutput     string
)

func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Answer a natural-language question with SQL",
		Long: `Translate a natural-language question into SQL, run it against the
local warehouse, and explain the result.

Examples:
  # Ask about the data
  datapilot ask "How many traffic events happened in Paris?"

  # Machine-readable output
  datapilot ask "Show daily event counts by city" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askConfigFile, "config", defaultConfigFile, "Path to config file")
	cmd.Flags().StringVarP(&askOutput, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	settings, err := config.Load(askConfigFile)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🤖 SQL Assistant")
	fmt.Printf("📝 Question: %s\n", question)
	fmt.Printf("💾 Warehouse: %s\n", settings.WarehousePath)
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

	s.Suffix = " Generating and executing SQL..."
	s.Start()
	generator := sqlgen.New(client, db.NewWarehouse(settings.WarehousePath))
	result := generator.Answer(question)
	s.Stop()

	if result.Success {
		printSuccess(fmt.Sprintf("Query returned %d rows", result.RowCount))
	} else {
		printError("Query failed")
	}

	return formatter.DisplayQueryResult(result, askOutput)
}
