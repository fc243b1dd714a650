package model

// Column is a single column of a warehouse table. Order matters: schemas
// are kept as slices so prompts list columns the way the table defines them.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// QueryResult is the outcome of generating and executing SQL for a
// natural-language question. On execution failure Success is false but SQL
// still carries the generated query so the user can see what was attempted.
type QueryResult struct {
	Success     bool                     `json:"success"`
	Question    string                   `json:"question"`
	SQL         string                   `json:"sql"`
	Columns     []string                 `json:"columns,omitempty"`
	Rows        []map[string]interface{} `json:"results"`
	RowCount    int                      `json:"row_count"`
	Explanation string                   `json:"explanation,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// QualityCheck is one suggested data-quality check for a table.
type QualityCheck struct {
	CheckID     string            `json:"check_id"`
	TableName   string            `json:"table_name"`
	CheckName   string            `json:"check_name"`
	Column      string            `json:"column"`
	CheckType   string            `json:"check_type"`
	Description string            `json:"description"`
	Severity    string            `json:"severity"`
	ExampleCode string            `json:"example_code"`
	RawFields   map[string]string `json:"raw_fields,omitempty"`
}

// QualityReport bundles the suggested checks with the verbatim model
// response for audit.
type QualityReport struct {
	Success     bool           `json:"success"`
	TableName   string         `json:"table_name"`
	Schema      []Column       `json:"schema"`
	Checks      []QualityCheck `json:"checks"`
	CheckCount  int            `json:"check_count"`
	RawResponse string         `json:"raw_response,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Diagnosis is the result of the three-stage pipeline debugging workflow.
// Explanation mirrors SolutionSteps: the original response contract exposes
// the solution text under both keys and existing callers read both.
type Diagnosis struct {
	Success       bool     `json:"success"`
	ErrorLog      string   `json:"error_log"`
	ErrorType     string   `json:"error_type"`
	RootCause     string   `json:"root_cause"`
	SolutionSteps string   `json:"solution_steps"`
	Commands      []string `json:"commands"`
	Explanation   string   `json:"explanation"`
	Prevention    string   `json:"prevention"`
	WorkflowLog   []string `json:"workflow_log"`
	Error         string   `json:"error,omitempty"`
}

// RootCausePreview returns the first n characters of the root cause with an
// ellipsis, for compact display.
func (d *Diagnosis) RootCausePreview(n int) string {
	if len(d.RootCause) <= n {
		return d.RootCause
	}
	return d.RootCause[:n] + "..."
}
