package prompts

import "fmt"

// BuildSQLPrompt asks for a single read-only SQL query answering the
// question against the given schema description.
func BuildSQLPrompt(schema, question string) string {
	return fmt.Sprintf(`You are a SQL expert. Given the following database schema, generate a valid SQLite SQL query to answer the user's question.

Database Schema:
%s

User Question: %s

Requirements:
- Generate ONLY the SQL query, no explanation
- Use SQLite syntax
- Ensure the query is valid and safe (read-only)
- Do not use DELETE, DROP, or INSERT statements

SQL Query:`, schema, question)
}

// BuildExplainPrompt asks for a short plain-English explanation of a query.
func BuildExplainPrompt(sql string) string {
	return fmt.Sprintf(`Explain this SQL query in simple terms:

%s

Provide a brief 1-2 sentence explanation of what this query does.`, sql)
}
