package debugger

import (
	"fmt"
	"strings"

	"github.com/datapilot-io/datapilot/pkg/llm"
	"github.com/datapilot-io/datapilot/pkg/model"
	"github.com/datapilot-io/datapilot/pkg/parser"
	"github.com/datapilot-io/datapilot/pkg/prompts"
)

// defaultDAGCode stands in when the caller supplies no pipeline source.
const defaultDAGCode = "# No DAG code provided"

// Debugger diagnoses pipeline failures through three sequential stages:
// log analysis, code check, solution generation. Each stage is a function
// from the previous stages' outputs to its own output struct; Diagnose
// composes them and assembles the result. Any stage's generation failure
// aborts the whole run.
type Debugger struct {
	llm llm.LLM
}

// New creates a Debugger on the given LLM.
func New(l llm.LLM) *Debugger {
	return &Debugger{llm: l}
}

// logAnalysis is the output of stage 1.
type logAnalysis struct {
	errorType string
	logEntry  string
}

// codeCheck is the output of stage 2.
type codeCheck struct {
	rootCause string
	logEntry  string
}

// solution is the output of stage 3.
type solution struct {
	steps      string
	commands   []string
	prevention string
	logEntry   string
}

func (d *Debugger) analyzeLog(errorLog string) (logAnalysis, error) {
	response, err := d.llm.Chat(prompts.BuildLogAnalysisPrompt(errorLog))
	if err != nil {
		return logAnalysis{}, err
	}

	errorType := parser.ClassifyErrorType(response, errorLog)
	return logAnalysis{
		errorType: errorType,
		logEntry:  fmt.Sprintf("Log Analyzer: Identified %s", errorType),
	}, nil
}

func (d *Debugger) checkCode(errorType, errorLog, dagCode string) (codeCheck, error) {
	response, err := d.llm.Chat(prompts.BuildCodeCheckPrompt(errorType, errorLog, dagCode))
	if err != nil {
		return codeCheck{}, err
	}

	return codeCheck{
		rootCause: strings.TrimSpace(response),
		logEntry:  fmt.Sprintf("Code Checker: %s...", truncate(response, 100)),
	}, nil
}

func (d *Debugger) generateSolution(errorType, rootCause, errorLog string) (solution, error) {
	response, err := d.llm.Chat(prompts.BuildSolutionPrompt(errorType, rootCause, errorLog))
	if err != nil {
		return solution{}, err
	}

	steps, commands, prevention := parser.ParseSolution(response)
	return solution{
		steps:      steps,
		commands:   commands,
		prevention: prevention,
		logEntry:   "Solution Generator: Generated fix",
	}, nil
}

// Diagnose runs the full pipeline for one error log. The returned Diagnosis
// always has Success set; on any stage failure it carries the gateway
// error's description and no partial stage output. WorkflowLog holds one
// entry per completed stage, in stage order.
func (d *Debugger) Diagnose(errorLog, dagCode string) *model.Diagnosis {
	if strings.TrimSpace(dagCode) == "" {
		dagCode = defaultDAGCode
	}

	la, err := d.analyzeLog(errorLog)
	if err != nil {
		return failure(errorLog, err)
	}

	cc, err := d.checkCode(la.errorType, errorLog, dagCode)
	if err != nil {
		return failure(errorLog, err)
	}

	sol, err := d.generateSolution(la.errorType, cc.rootCause, errorLog)
	if err != nil {
		return failure(errorLog, err)
	}

	return &model.Diagnosis{
		Success:       true,
		ErrorLog:      errorLog,
		ErrorType:     la.errorType,
		RootCause:     cc.rootCause,
		SolutionSteps: sol.steps,
		Commands:      sol.commands,
		Explanation:   sol.steps,
		Prevention:    sol.prevention,
		WorkflowLog:   []string{la.logEntry, cc.logEntry, sol.logEntry},
	}
}

func failure(errorLog string, err error) *model.Diagnosis {
	return &model.Diagnosis{
		Success:  false,
		ErrorLog: errorLog,
		Error:    err.Error(),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
