package errors

// ErrorCode identifies an application failure independently of its HTTP status.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003
	ErrorCode_RATE_LIMITED     ErrorCode = 1004

	// Meeting notes validation
	ErrorCode_VALIDATION_FAILED ErrorCode = 2000
	ErrorCode_MISSING_ASSIGNEE  ErrorCode = 2001
	ErrorCode_MISSING_TASK_NAME ErrorCode = 2002
	ErrorCode_DUPLICATE_TASK    ErrorCode = 2003
	ErrorCode_UNSUPPORTED_INPUT ErrorCode = 2004
	ErrorCode_MISSING_TEXT      ErrorCode = 2005
	ErrorCode_MISSING_FILE      ErrorCode = 2006

	// AI collaborators
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3000
	ErrorCode_AI_SUGGESTION_FAILED    ErrorCode = 3001
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3002
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3003

	// Export and integrations
	ErrorCode_REPORT_EXPORT_FAILED     ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:              "UNSPECIFIED",
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_RATE_LIMITED:             "RATE_LIMITED",
	ErrorCode_VALIDATION_FAILED:        "VALIDATION_FAILED",
	ErrorCode_MISSING_ASSIGNEE:         "MISSING_ASSIGNEE",
	ErrorCode_MISSING_TASK_NAME:        "MISSING_TASK_NAME",
	ErrorCode_DUPLICATE_TASK:           "DUPLICATE_TASK",
	ErrorCode_UNSUPPORTED_INPUT:        "UNSUPPORTED_INPUT",
	ErrorCode_MISSING_TEXT:             "MISSING_TEXT",
	ErrorCode_MISSING_FILE:             "MISSING_FILE",
	ErrorCode_AI_SUMMARY_FAILED:        "AI_SUMMARY_FAILED",
	ErrorCode_AI_SUGGESTION_FAILED:     "AI_SUGGESTION_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:  "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_REPORT_EXPORT_FAILED:     "REPORT_EXPORT_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED: "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON responses.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
