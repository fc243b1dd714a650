package prompts

import (
	"fmt"
	"strings"

	"github.com/datapilot-io/datapilot/pkg/model"
)

// BuildChecksPrompt asks for data-quality check suggestions for a table,
// listing columns in schema order.
func BuildChecksPrompt(tableName string, schema []model.Column) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Table: %s\nColumns:\n", tableName)
	for _, col := range schema {
		fmt.Fprintf(&sb, "  - %s: %s\n", col.Name, col.Type)
	}

	return fmt.Sprintf(`You are a data quality expert. Given the following database table schema, suggest data quality checks.

%s

For each column, suggest:
1. Null checks (should it allow nulls?)
2. Value range checks (min/max, allowed values)
3. Format checks (patterns, constraints)
4. Relationship checks (foreign keys, uniqueness)

Provide practical, actionable quality checks. Format each check as:

CHECK 1:
Check name: [name]
Column: [column_name]
Type: [null_check, range_check, format_check, uniqueness_check]
Severity: [critical, high, medium, low]
Description: [what to check]
Python code: [example assertion or check]

Generate quality checks:`, sb.String())
}
