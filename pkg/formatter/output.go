package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/datapilot-io/datapilot/pkg/model"
)

// DisplayQueryResult renders a NL-to-SQL result in the requested format.
func DisplayQueryResult(result *model.QueryResult, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayQueryHuman(result)
	}
	return nil
}

// DisplayQualityReport renders quality-check suggestions in the requested format.
func DisplayQualityReport(report *model.QualityReport, format string) error {
	switch format {
	case "json":
		return displayJSON(report)
	case "yaml":
		return displayYAML(report)
	case "human":
		fallthrough
	default:
		displayQualityHuman(report)
	}
	return nil
}

// DisplayDiagnosis renders a pipeline diagnosis in the requested format.
func DisplayDiagnosis(diagnosis *model.Diagnosis, format string) error {
	switch format {
	case "json":
		return displayJSON(diagnosis)
	case "yaml":
		return displayYAML(diagnosis)
	case "human":
		fallthrough
	default:
		displayDiagnosisHuman(diagnosis)
	}
	return nil
}

func displayJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayQueryHuman(result *model.QueryResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	cyan.Println("🧠 GENERATED SQL:")
	fmt.Println(indent(result.SQL, "   "))
	fmt.Println()

	if !result.Success {
		printFailure(result.Error)
		return
	}

	green.Printf("📊 RESULTS (%d rows):\n", result.RowCount)
	for i, row := range result.Rows {
		if i >= 10 {
			fmt.Printf("   ... %d more rows\n", result.RowCount-10)
			break
		}
		parts := make([]string, 0, len(result.Columns))
		for _, col := range result.Columns {
			parts = append(parts, fmt.Sprintf("%s=%v", col, row[col]))
		}
		fmt.Printf("   %s\n", strings.Join(parts, "  "))
	}
	fmt.Println()

	if result.Explanation != "" {
		cyan.Println("💡 EXPLANATION:")
		fmt.Println(indent(result.Explanation, "   "))
		fmt.Println()
	}
	printFooter()
}

func displayQualityHuman(report *model.QualityReport) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	if !report.Success {
		printFailure(report.Error)
		return
	}

	green.Printf("✅ %d QUALITY CHECKS FOR %s:\n\n", report.CheckCount, report.TableName)
	for _, check := range report.Checks {
		severityColor := getSeverityColor(check.Severity)
		fmt.Printf("   %s  ", check.CheckID)
		severityColor.Printf("[%s]\n", strings.ToUpper(check.Severity))
		fmt.Printf("   Check:  %s\n", check.CheckName)
		fmt.Printf("   Column: %s (%s)\n", check.Column, check.CheckType)
		fmt.Printf("   %s\n", check.Description)
		if check.ExampleCode != "" {
			fmt.Printf("   Code:   %s\n", color.CyanString(firstLine(check.ExampleCode)))
		}
		fmt.Println()
	}

	cyan.Println("📄 The raw model response is available with -o json or -o yaml")
	printFooter()
}

func displayDiagnosisHuman(diagnosis *model.Diagnosis) {
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Println()
	if !diagnosis.Success {
		printFailure(diagnosis.Error)
		return
	}

	red.Println("🔍 DIAGNOSIS:")
	fmt.Printf("   Error Type: %s\n", diagnosis.ErrorType)
	fmt.Printf("   Root Cause: %s\n\n", diagnosis.RootCausePreview(200))

	green.Println("✅ SOLUTION:")
	fmt.Println(indent(diagnosis.SolutionSteps, "   "))
	fmt.Println()

	cyan.Println("💻 COMMANDS:")
	for _, cmd := range diagnosis.Commands {
		fmt.Printf("   %s\n", color.CyanString(cmd))
	}
	fmt.Println()

	yellow.Println("🛡️  PREVENTION:")
	fmt.Println(indent(diagnosis.Prevention, "   "))
	fmt.Println()

	cyan.Println("🤖 WORKFLOW:")
	for _, step := range diagnosis.WorkflowLog {
		fmt.Printf("   - %s\n", step)
	}
	printFooter()
}

func printFailure(msg string) {
	red := color.New(color.FgRed, color.Bold)
	red.Println("✗ OPERATION FAILED:")
	fmt.Printf("   %s\n", msg)
}

func printFooter() {
	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func getSeverityColor(severity string) *color.Color {
	switch strings.ToLower(severity) {
	case "critical":
		return color.New(color.FgRed, color.Bold)
	case "high":
		return color.New(color.FgRed)
	case "medium":
		return color.New(color.FgYellow)
	case "low":
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func firstLine(text string) string {
	if idx := strings.Index(text, "\n"); idx >= 0 {
		return text[:idx] + " ..."
	}
	return text
}
