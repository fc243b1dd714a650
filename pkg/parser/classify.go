package parser

import "strings"

// knownErrorTypes are the error labels the classifier recognizes in model
// responses, in match-priority order.
var knownErrorTypes = []string{
	"PermissionError",
	"ImportError",
	"ConnectionError",
	"FileNotFoundError",
	"ValueError",
	"KeyError",
	"TypeError",
	"AttributeError",
	"ModuleNotFoundError",
}

// logErrorTypes is the smaller vocabulary searched directly in the raw
// error log when the model response names nothing.
var logErrorTypes = knownErrorTypes[:6]

// ClassifyErrorType extracts a canonical error label from a log-analysis
// response, falling back to the original log. Priority:
//
//  1. an "error type:" line in the response (text after the first colon)
//  2. a known error name appearing anywhere in the response
//  3. a known error name appearing in the original log
//  4. "Unknown"
//
// Pure function; always returns a non-empty label.
func ClassifyErrorType(response, errorLog string) string {
	for _, line := range strings.Split(response, "\n") {
		clean := strings.TrimSpace(line)
		if strings.Contains(strings.ToLower(clean), "error type:") {
			if label := strings.TrimSpace(strings.SplitN(clean, ":", 2)[1]); label != "" {
				return label
			}
		}
	}

	for _, line := range strings.Split(response, "\n") {
		for _, errType := range knownErrorTypes {
			if strings.Contains(line, errType) {
				return errType
			}
		}
	}

	for _, line := range strings.Split(errorLog, "\n") {
		for _, errType := range logErrorTypes {
			if strings.Contains(line, errType) {
				return errType
			}
		}
	}

	return "Unknown"
}
