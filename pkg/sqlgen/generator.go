package sqlgen

import (
	"fmt"
	"strings"

	"github.com/datapilot-io/datapilot/pkg/db"
	"github.com/datapilot-io/datapilot/pkg/llm"
	"github.com/datapilot-io/datapilot/pkg/model"
	"github.com/datapilot-io/datapilot/pkg/parser"
	"github.com/datapilot-io/datapilot/pkg/prompts"
)

// Generator turns natural-language questions into executed SQL queries
// against the warehouse.
type Generator struct {
	llm       llm.LLM
	warehouse *db.Warehouse
}

// New creates a Generator on the given LLM and warehouse.
func New(l llm.LLM, w *db.Warehouse) *Generator {
	return &Generator{llm: l, warehouse: w}
}

// Answer generates SQL for the question, executes it read-only, and asks
// the model for a short explanation. Execution or explanation failure still
// returns the generated SQL so the user can see what was attempted.
func (g *Generator) Answer(question string) *model.QueryResult {
	schema, err := g.warehouse.SchemaDescription()
	if err != nil {
		// The prompt still goes out; the model may answer from the
		// question alone and the user sees the schema problem inline.
		schema = fmt.Sprintf("Error reading schema: %v", err)
	}

	response, err := g.llm.Chat(prompts.BuildSQLPrompt(schema, question))
	if err != nil {
		return &model.QueryResult{
			Success:  false,
			Question: question,
			Rows:     []map[string]interface{}{},
			Error:    err.Error(),
		}
	}
	sqlText := parser.ExtractSQL(response)

	columns, rows, err := g.warehouse.Query(sqlText)
	if err != nil {
		return &model.QueryResult{
			Success:  false,
			Question: question,
			SQL:      sqlText,
			Rows:     []map[string]interface{}{},
			Error:    err.Error(),
		}
	}

	explanation, err := g.llm.Chat(prompts.BuildExplainPrompt(sqlText))
	if err != nil {
		return &model.QueryResult{
			Success:  false,
			Question: question,
			SQL:      sqlText,
			Rows:     []map[string]interface{}{},
			Error:    err.Error(),
		}
	}

	return &model.QueryResult{
		Success:     true,
		Question:    question,
		SQL:         sqlText,
		Columns:     columns,
		Rows:        rows,
		RowCount:    len(rows),
		Explanation: strings.TrimSpace(explanation),
	}
}
