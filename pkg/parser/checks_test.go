package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockResponse = `Here are the suggested checks:

CHECK 1:
Check name: event_date_not_null
Column: event_date
Type: null_check
Severity: critical
Description: Date should never be null

CHECK 2:
Check name: event_count_positive
Column: event_count
Type: range_check
Severity: high
Description: Count must be positive
Python code: assert (df["event_count"] > 0).all()
`

func TestParseChecks_BlockFormat(t *testing.T) {
	checks := ParseChecks(blockResponse)
	require.Len(t, checks, 2)

	assert.Equal(t, "event_date_not_null", checks[0]["check_name"])
	assert.Equal(t, "event_date", checks[0]["column"])
	assert.Equal(t, "null_check", checks[0]["type"])
	assert.Equal(t, "critical", checks[0]["severity"])
	assert.Equal(t, "Date should never be null", checks[0]["description"])

	assert.Equal(t, "event_count_positive", checks[1]["check_name"])
	assert.Equal(t, `assert (df["event_count"] > 0).all()`, checks[1]["python_code"])
}

func TestParseChecks_BlockOrderFollowsSource(t *testing.T) {
	checks := ParseChecks(blockResponse)
	require.Len(t, checks, 2)
	assert.Equal(t, "event_date_not_null", checks[0]["check_name"])
	assert.Equal(t, "event_count_positive", checks[1]["check_name"])
}

func TestParseChecks_BlockCodeAccumulation(t *testing.T) {
	raw := `CHECK 1:
Description: Validate ranges
Python code:
assert df["v"].min() >= 0
assert df["v"].max() <= 100
`
	checks := ParseChecks(raw)
	require.Len(t, checks, 1)
	assert.Equal(t, "assert df[\"v\"].min() >= 0\nassert df[\"v\"].max() <= 100", checks[0]["python_code"])
}

func TestParseChecks_BlockWithoutDescriptionDropped(t *testing.T) {
	raw := `CHECK 1:
Check name: incomplete

CHECK 2:
Check name: complete
Description: has one
`
	checks := ParseChecks(raw)
	require.Len(t, checks, 1)
	assert.Equal(t, "complete", checks[0]["check_name"])
}

func TestParseChecks_BulletFormat(t *testing.T) {
	raw := `
- Check name: event_date_not_null
  Column: event_date
  Type: null_check
  Severity: critical
  Description: Date should not be null

- Check name: event_count_positive
  Column: event_count
  Type: range_check
  Severity: high
  Description: Count must be positive
`
	checks := ParseChecks(raw)
	require.Len(t, checks, 2)

	assert.Equal(t, "Check name: event_date_not_null", checks[0]["description"])
	assert.Equal(t, "event_date", checks[0]["column"])
	assert.Equal(t, "null_check", checks[0]["type"])
	assert.Equal(t, "critical", checks[0]["severity"])
	assert.Equal(t, "range_check", checks[1]["type"])
}

func TestParseChecks_BulletKeysNormalized(t *testing.T) {
	raw := `- First check
  Check Name: uniqueness
  Python Code: assert df["id"].is_unique
`
	checks := ParseChecks(raw)
	require.Len(t, checks, 1)
	assert.Equal(t, "uniqueness", checks[0]["check_name"])
	assert.Equal(t, `assert df["id"].is_unique`, checks[0]["python_code"])
}

func TestParseChecks_FallbackNeverEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "No specific checks suggested."},
		{"noise", "@@@@ ????? 12345"},
		{"whitespace noise", "   \n lorem ipsum \n  dolor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := ParseChecks(tt.raw)
			require.Len(t, checks, 1)
			assert.Equal(t, tt.raw, checks[0]["description"])
			assert.Equal(t, "general", checks[0]["type"])
		})
	}
}

func TestParseChecks_FallbackIdempotent(t *testing.T) {
	raw := "nothing recognizable here"
	first := ParseChecks(raw)
	second := ParseChecks(raw)
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, raw, first[0]["description"])
}
