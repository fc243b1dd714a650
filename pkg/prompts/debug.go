package prompts

import "fmt"

// BuildLogAnalysisPrompt asks for error-type classification of a raw log.
func BuildLogAnalysisPrompt(errorLog string) string {
	return fmt.Sprintf(`You are a log analysis expert. Analyze this error log and identify the error type.

Error Log:
%s

Identify:
1. Error type (e.g., PermissionError, ImportError, ConnectionError, etc.)
2. The exact error message
3. Which component/file is failing

Respond in this format:
Error Type: [type]
Error Message: [message]
Failing Component: [component]

Analysis:`, errorLog)
}

// BuildCodeCheckPrompt asks for root-cause analysis of the pipeline code
// given the classified error.
func BuildCodeCheckPrompt(errorType, errorLog, dagCode string) string {
	return fmt.Sprintf(`You are a code review expert. Given this error type and DAG code, identify the root cause.

Error Type: %s
Error Log: %s

DAG Code:
%s

Analyze the code and identify:
1. What is causing this error?
2. Which line(s) of code are problematic?
3. Why is this happening?

Root Cause Analysis:`, errorType, errorLog, dagCode)
}

// BuildSolutionPrompt asks for a structured four-part fix.
func BuildSolutionPrompt(errorType, rootCause, errorLog string) string {
	return fmt.Sprintf(`You are a DevOps/Data Engineering expert. Given this error analysis, provide a solution.

Error Type: %s
Root Cause: %s
Error Log: %s

Provide:
1. Step-by-step solution
2. Exact commands to fix the issue
3. Explanation of why this fixes the problem
4. How to prevent this in the future

Format your response as:
SOLUTION:
[step by step]

COMMANDS:
[command 1]
[command 2]

EXPLANATION:
[why this works]

PREVENTION:
[how to avoid this]

Solution:`, errorType, rootCause, errorLog)
}
