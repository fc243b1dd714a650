package debugger

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapilot-io/datapilot/pkg/llm"
)

// stubLLM replays scripted responses and can fail at a given call index.
type stubLLM struct {
	responses []string
	failAt    int // 1-based call index that fails; 0 means never
	prompts   []string
}

func (s *stubLLM) Chat(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	call := len(s.prompts)
	if s.failAt != 0 && call == s.failAt {
		return "", &llm.GenerationError{Provider: "stub", Cause: errors.New("connection refused")}
	}
	if call <= len(s.responses) {
		return s.responses[call-1], nil
	}
	return "", nil
}

const permissionLog = "PermissionError: [Errno 13] Permission denied: '/data/events.csv'"

func TestDiagnose_Success(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"Error Type: PermissionError\nError Message: denied\nFailing Component: extract_data",
		"The task opens the file without read permission on line 45.",
		"SOLUTION:\nGrant read access.\n\nCOMMANDS:\n- chmod 644 /data/events.csv\n\nPREVENTION:\nSet permissions at deploy time.",
	}}

	result := New(stub).Diagnose(permissionLog, "")

	require.True(t, result.Success)
	assert.Equal(t, "PermissionError", result.ErrorType)
	assert.Equal(t, "The task opens the file without read permission on line 45.", result.RootCause)
	assert.Equal(t, "Grant read access.", result.SolutionSteps)
	assert.Equal(t, []string{"chmod 644 /data/events.csv"}, result.Commands)
	assert.Equal(t, "Set permissions at deploy time.", result.Prevention)
	assert.Equal(t, result.SolutionSteps, result.Explanation)
	assert.Equal(t, 3, len(stub.prompts))
}

func TestDiagnose_WorkflowLogHasOneEntryPerStage(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"Error Type: ImportError",
		"Missing dependency in the scheduler image.",
		"SOLUTION:\nInstall it.",
	}}

	result := New(stub).Diagnose("ImportError: no module named pandas", "")

	require.True(t, result.Success)
	require.Len(t, result.WorkflowLog, 3)
	assert.Equal(t, "Log Analyzer: Identified ImportError", result.WorkflowLog[0])
	assert.True(t, strings.HasPrefix(result.WorkflowLog[1], "Code Checker: "))
	assert.Equal(t, "Solution Generator: Generated fix", result.WorkflowLog[2])
}

func TestDiagnose_CodeCheckerEntryTruncated(t *testing.T) {
	longCause := strings.Repeat("x", 300)
	stub := &stubLLM{responses: []string{
		"Error Type: ValueError",
		longCause,
		"SOLUTION:\nFix it.",
	}}

	result := New(stub).Diagnose("ValueError: bad", "")

	require.True(t, result.Success)
	assert.Equal(t, "Code Checker: "+strings.Repeat("x", 100)+"...", result.WorkflowLog[1])
	assert.Equal(t, longCause, result.RootCause)
}

func TestDiagnose_FailFastOnSecondCall(t *testing.T) {
	stub := &stubLLM{
		responses: []string{"Error Type: KeyError"},
		failAt:    2,
	}

	result := New(stub).Diagnose("KeyError: 'city'", "")

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "connection refused")
	// The third stage must never run.
	assert.Equal(t, 2, len(stub.prompts))
	assert.Empty(t, result.WorkflowLog)
	assert.Empty(t, result.RootCause)
}

func TestDiagnose_FailOnFirstCall(t *testing.T) {
	stub := &stubLLM{failAt: 1}

	result := New(stub).Diagnose(permissionLog, "")

	require.False(t, result.Success)
	assert.Equal(t, permissionLog, result.ErrorLog)
	assert.Equal(t, 1, len(stub.prompts))
}

func TestDiagnose_VocabularyFallbackFromLog(t *testing.T) {
	// The model's answer never names the error type; classification must
	// find PermissionError verbatim in the original log.
	stub := &stubLLM{responses: []string{
		"The task cannot read its input file.",
		"File access is denied to the task user.",
		"SOLUTION:\nFix permissions.",
	}}

	result := New(stub).Diagnose(permissionLog, "")

	require.True(t, result.Success)
	assert.Equal(t, "PermissionError", result.ErrorType)
}

func TestDiagnose_DAGCodeDefaultPlaceholder(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"Error Type: ValueError",
		"cause",
		"SOLUTION:\nfix",
	}}

	New(stub).Diagnose("ValueError: x", "   ")

	require.Len(t, stub.prompts, 3)
	assert.Contains(t, stub.prompts[1], "# No DAG code provided")
}

func TestDiagnose_DAGCodePassedThrough(t *testing.T) {
	dag := "def extract():\n    open('/data/events.csv')"
	stub := &stubLLM{responses: []string{
		"Error Type: PermissionError",
		"cause",
		"SOLUTION:\nfix",
	}}

	New(stub).Diagnose(permissionLog, dag)

	require.Len(t, stub.prompts, 3)
	assert.Contains(t, stub.prompts[1], dag)
	assert.NotContains(t, stub.prompts[1], "# No DAG code provided")
}

func TestDiagnose_StageOutputsFlowForward(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"Error Type: ConnectionError",
		"The warehouse host is unreachable from the worker.",
		"SOLUTION:\nOpen the firewall.",
	}}

	New(stub).Diagnose("ConnectionError: refused", "")

	require.Len(t, stub.prompts, 3)
	assert.Contains(t, stub.prompts[1], "Error Type: ConnectionError")
	assert.Contains(t, stub.prompts[2], "The warehouse host is unreachable from the worker.")
	assert.Contains(t, stub.prompts[2], "Error Type: ConnectionError")
}
