package parser

import "strings"

// ExtractSQL pulls the SQL statement out of a model response. A ```sql
// tagged fence wins, then the first generic fence pair, otherwise the
// trimmed response is returned as-is. Only the first fenced block is used.
// The SQL is not validated here; execution is the validator.
func ExtractSQL(raw string) string {
	sql := strings.TrimSpace(raw)

	if strings.Contains(sql, "```sql") {
		sql = strings.SplitN(sql, "```sql", 2)[1]
		sql = strings.SplitN(sql, "```", 2)[0]
	} else if strings.Contains(sql, "```") {
		sql = strings.SplitN(sql, "```", 3)[1]
	}

	return strings.TrimSpace(sql)
}
