package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/datapilot-io/datapilot/pkg/config"
	"github.com/datapilot-io/datapilot/pkg/llm"
)

// defaultConfigFile is looked up relative to the working directory; a
// missing file falls back to defaults plus environment variables.
const defaultConfigFile = ".datapilot.yaml"

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + suffix
	return s
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}

// connectLLM builds the query-timeout client and, for Ollama, verifies the
// server is reachable before any prompt goes out.
func connectLLM(settings config.Settings, debug bool) (llm.LLM, error) {
	var (
		client llm.LLM
		err    error
	)
	if debug {
		client, err = llm.NewDebugLLM(settings)
	} else {
		client, err = llm.NewQueryLLM(settings)
	}
	if err != nil {
		return nil, err
	}

	if ollama, ok := client.(*llm.Ollama); ok {
		if err := ollama.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to Ollama: %w", err)
		}
	}
	return client, nil
}
