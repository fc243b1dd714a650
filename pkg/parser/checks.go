package parser

import "strings"

// ParseChecks segments a model response into raw quality-check field maps.
// The stricter CHECK-block format is tried first, then the older bullet
// format; if neither produces anything the whole response becomes a single
// "general" record. The result is never empty and preserves source order.
func ParseChecks(raw string) []map[string]string {
	checks := parseCheckBlocks(raw)
	if len(checks) == 0 {
		checks = parseCheckBullets(raw)
	}
	if len(checks) == 0 {
		checks = []map[string]string{{
			"description": raw,
			"type":        "general",
		}}
	}
	return checks
}

// parseCheckBlocks handles the block format:
//
//	CHECK 1:
//	Check name: event_date_not_null
//	Column: event_date
//	Type: null_check
//	Severity: critical
//	Description: Date should never be null
//	Python code: assert df["event_date"].notnull().all()
//
// A blank line or the next CHECK marker closes the current block; a block
// is only kept once it has a description. After a code label, unlabeled
// non-fence lines accumulate as additional code lines.
func parseCheckBlocks(raw string) []map[string]string {
	var checks []map[string]string
	var current map[string]string
	var codeLines []string
	inCode := false

	flush := func() {
		if current != nil {
			if len(codeLines) > 0 {
				current["python_code"] = strings.Join(codeLines, "\n")
			}
			if current["description"] != "" {
				checks = append(checks, current)
			}
		}
		current = nil
		codeLines = nil
		inCode = false
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		// Field labels take priority: "Check name:" also starts with
		// CHECK but is a field of the current block, not a new block.
		field, value, labeled := matchCheckField(trimmed)

		switch {
		case labeled && current != nil:
			if field == "python_code" {
				inCode = true
				if value != "" {
					codeLines = append(codeLines, value)
				}
			} else {
				current[field] = value
			}

		case !labeled && strings.HasPrefix(strings.ToUpper(trimmed), "CHECK"):
			flush()
			current = map[string]string{}

		case current == nil:
			// Text outside any block is ignored.

		case trimmed == "":
			flush()

		case inCode && !strings.HasPrefix(trimmed, "```"):
			codeLines = append(codeLines, trimmed)
		}
	}
	flush()

	return checks
}

// matchCheckField recognizes a block field label, case-insensitively and by
// substring, returning the canonical field key and the text after the colon.
func matchCheckField(line string) (field, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	label := strings.ToLower(line[:idx])
	value = strings.TrimSpace(line[idx+1:])

	switch {
	case strings.Contains(label, "name"):
		return "check_name", value, true
	case strings.Contains(label, "column"):
		return "column", value, true
	case strings.Contains(label, "type"):
		return "type", value, true
	case strings.Contains(label, "severity"):
		return "severity", value, true
	case strings.Contains(label, "description"):
		return "description", value, true
	case strings.Contains(label, "code"):
		return "python_code", value, true
	}
	return "", "", false
}

// parseCheckBullets handles the older bullet format: each "- " or "* " line
// starts a check whose text is the description, and following "key: value"
// lines fold into it with keys lower-cased and underscored.
func parseCheckBullets(raw string) []map[string]string {
	var checks []map[string]string
	var current map[string]string

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			if current != nil {
				checks = append(checks, current)
			}
			current = map[string]string{
				"description": strings.TrimSpace(line[2:]),
			}
			continue
		}

		if current != nil && strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(parts[0])), " ", "_")
			current[key] = strings.TrimSpace(parts[1])
		}
	}
	if current != nil {
		checks = append(checks, current)
	}

	return checks
}
