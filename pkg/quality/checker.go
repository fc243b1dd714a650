package quality

import (
	"fmt"

	"github.com/datapilot-io/datapilot/pkg/llm"
	"github.com/datapilot-io/datapilot/pkg/model"
	"github.com/datapilot-io/datapilot/pkg/parser"
	"github.com/datapilot-io/datapilot/pkg/prompts"
)

// Checker suggests data-quality checks for a table schema.
type Checker struct {
	llm llm.LLM
}

// New creates a Checker on the given LLM.
func New(l llm.LLM) *Checker {
	return &Checker{llm: l}
}

// SuggestChecks prompts for quality checks on the table and enriches every
// parsed record with a unique ordinal check id and defaults for missing
// fields. Severity is passed through as free text. The check list is never
// empty on success: the parser substitutes a fallback record when the
// response yields nothing structured.
func (c *Checker) SuggestChecks(tableName string, schema []model.Column) *model.QualityReport {
	response, err := c.llm.Chat(prompts.BuildChecksPrompt(tableName, schema))
	if err != nil {
		return &model.QualityReport{
			Success:   false,
			TableName: tableName,
			Schema:    schema,
			Checks:    []model.QualityCheck{},
			Error:     err.Error(),
		}
	}

	raw := parser.ParseChecks(response)
	checks := make([]model.QualityCheck, 0, len(raw))
	for i, fields := range raw {
		checks = append(checks, model.QualityCheck{
			CheckID:     fmt.Sprintf("%s_check_%d", tableName, i+1),
			TableName:   tableName,
			CheckName:   fieldOr(fields, "check_name", fmt.Sprintf("check_%d", i+1)),
			Column:      fieldOr(fields, "column", "multiple"),
			CheckType:   fieldOr(fields, "type", "general"),
			Description: fieldOr(fields, "description", "Quality check"),
			Severity:    fieldOr(fields, "severity", "medium"),
			ExampleCode: fieldOr(fields, "python_code", "# Check implementation needed"),
			RawFields:   fields,
		})
	}

	return &model.QualityReport{
		Success:     true,
		TableName:   tableName,
		Schema:      schema,
		Checks:      checks,
		CheckCount:  len(checks),
		RawResponse: response,
	}
}

func fieldOr(fields map[string]string, key, fallback string) string {
	if v := fields[key]; v != "" {
		return v
	}
	return fallback
}
