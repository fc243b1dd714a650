package quality

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapilot-io/datapilot/pkg/llm"
	"github.com/datapilot-io/datapilot/pkg/model"
)

type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) Chat(prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

var eventSchema = []model.Column{
	{Name: "event_date", Type: "DATE"},
	{Name: "city", Type: "TEXT"},
	{Name: "event_count", Type: "INTEGER"},
}

func TestSuggestChecks_StructuredResponse(t *testing.T) {
	stub := &stubLLM{response: `CHECK 1:
Check name: event_date_not_null
Column: event_date
Check type: null_check
Severity: high
Description: Event date must always be set.
Python code:
assert df["event_date"].notnull().all()

CHECK 2:
Check name: event_count_positive
Column: event_count
Check type: range_check
Severity: medium
Description: Counts must be non-negative.
`}

	report := New(stub).SuggestChecks("analytics_events_daily", eventSchema)

	require.True(t, report.Success)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, 2, report.CheckCount)

	first := report.Checks[0]
	assert.Equal(t, "analytics_events_daily_check_1", first.CheckID)
	assert.Equal(t, "analytics_events_daily", first.TableName)
	assert.Equal(t, "event_date_not_null", first.CheckName)
	assert.Equal(t, "event_date", first.Column)
	assert.Equal(t, "null_check", first.CheckType)
	assert.Equal(t, "high", first.Severity)
	assert.Equal(t, "Event date must always be set.", first.Description)
	assert.Contains(t, first.ExampleCode, `assert df["event_date"].notnull().all()`)

	second := report.Checks[1]
	assert.Equal(t, "analytics_events_daily_check_2", second.CheckID)
	assert.Equal(t, "event_count_positive", second.CheckName)
	// No code block in the second check, so the placeholder applies.
	assert.Equal(t, "# Check implementation needed", second.ExampleCode)
}

func TestSuggestChecks_UnstructuredResponseFallsBack(t *testing.T) {
	stub := &stubLLM{response: "You should make sure the table has no duplicate rows."}

	report := New(stub).SuggestChecks("orders", eventSchema)

	require.True(t, report.Success)
	require.Len(t, report.Checks, 1)

	check := report.Checks[0]
	assert.Equal(t, "orders_check_1", check.CheckID)
	assert.Equal(t, "check_1", check.CheckName)
	assert.Equal(t, "multiple", check.Column)
	assert.Equal(t, "general", check.CheckType)
	assert.Equal(t, "medium", check.Severity)
	assert.Equal(t, "You should make sure the table has no duplicate rows.", check.Description)
}

func TestSuggestChecks_FreeTextSeverityPreserved(t *testing.T) {
	stub := &stubLLM{response: `CHECK 1:
Check name: city_known
Severity: critical-ish, depends on downstream use
Description: City should come from the reference list.
`}

	report := New(stub).SuggestChecks("events", eventSchema)

	require.True(t, report.Success)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, "critical-ish, depends on downstream use", report.Checks[0].Severity)
}

func TestSuggestChecks_LLMError(t *testing.T) {
	stub := &stubLLM{err: &llm.GenerationError{Provider: "ollama", Cause: errors.New("model not found")}}

	report := New(stub).SuggestChecks("events", eventSchema)

	require.False(t, report.Success)
	assert.Equal(t, "events", report.TableName)
	assert.Empty(t, report.Checks)
	assert.Contains(t, report.Error, "model not found")
}

func TestSuggestChecks_PromptCarriesSchema(t *testing.T) {
	stub := &stubLLM{response: "CHECK 1:\nDescription: anything\n"}

	New(stub).SuggestChecks("analytics_events_daily", eventSchema)

	assert.Contains(t, stub.prompt, "analytics_events_daily")
	assert.Contains(t, stub.prompt, "event_date")
	assert.Contains(t, stub.prompt, "INTEGER")
}
