package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datapilot-io/datapilot/pkg/config"
	"github.com/datapilot-io/datapilot/pkg/debugger"
	"github.com/datapilot-io/datapilot/pkg/formatter"
)

var (
	debugConfigFile string
	debugOutput     string
	debugLogFile    string
	debugDAGFile    string
)

func NewDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug [ERROR_LOG]",
		Short: "Diagnose a pipeline failure with AI assistance",
		Long: `Diagnose a data-pipeline error through a three-stage workflow:
log analysis, root-cause analysis, and solution generation.

The error log comes from the argument or from -f; pipeline source is
optional context for root-cause analysis.

Examples:
  # Inline error text
  datapilot debug "PermissionError: [Errno 13] Permission denied: '/data/events.csv'"

  # From files, with the DAG source for context
  datapilot debug -f failed_task.log -d dags/etl_pipeline.py`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDebug,
	}

	cmd.Flags().StringVar(&debugConfigFile, "config", defaultConfigFile, "Path to config file")
	cmd.Flags().StringVarP(&debugOutput, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVarP(&debugLogFile, "log-file", "f", "", "File containing the error log")
	cmd.Flags().StringVarP(&debugDAGFile, "dag-file", "d", "", "File containing the pipeline/DAG source")

	return cmd
}

func runDebug(cmd *cobra.Command, args []string) error {
	errorLog, err := readDebugInput(args)
	if err != nil {
		return err
	}

	dagCode := ""
	if debugDAGFile != "" {
		data, err := os.ReadFile(debugDAGFile)
		if err != nil {
			return fmt.Errorf("read DAG file: %w", err)
		}
		dagCode = string(data)
	}

	settings, err := config.Load(debugConfigFile)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🔧 Pipeline Debugger")
	fmt.Printf("📝 Error log: %d bytes\n", len(errorLog))
	if dagCode != "" {
		fmt.Printf("📄 DAG code: %d bytes\n", len(dagCode))
	}
	fmt.Println()

	s := newSpinner("Connecting to language model...")
	s.Start()
	client, err := connectLLM(settings, true)
	if err != nil {
		s.Stop()
		return err
	}
	s.Stop()
	printSuccess("Language model ready")

	s.Suffix = " Running three-stage diagnosis..."
	s.Start()
	diagnosis := debugger.New(client).Diagnose(errorLog, dagCode)
	s.Stop()

	if diagnosis.Success {
		printSuccess(fmt.Sprintf("Diagnosed %s", diagnosis.ErrorType))
	} else {
		printError("Diagnosis failed")
	}

	return formatter.DisplayDiagnosis(diagnosis, debugOutput)
}

func readDebugInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if debugLogFile != "" {
		data, err := os.ReadFile(debugLogFile)
		if err != nil {
			return "", fmt.Errorf("read log file: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("provide the error log as an argument or with -f")
}
