package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 11000-11999: Session errors
// 12000-12999: Document & code block errors
// 13000-13999: Submission errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalServerError ErrorCode = 10001
	InvalidParams       ErrorCode = 10002
	NotFound            ErrorCode = 10003
	Timeout             ErrorCode = 10008

	// Configuration errors (10100-10199)
	ConfigLoadFailed      ErrorCode = 10100
	ConfigInvalid         ErrorCode = 10101
	CodeFileNotConfigured ErrorCode = 10102

	// File system errors (10200-10299)
	FileReadFailed  ErrorCode = 10200
	FileWriteFailed ErrorCode = 10201

	// ========== Session Errors (11000-11999) ==========

	NotSignedIn       ErrorCode = 11000
	SessionLoadFailed ErrorCode = 11001
	SessionSaveFailed ErrorCode = 11002

	// ========== Document & Code Block Errors (12000-12999) ==========

	NoActiveDocument   ErrorCode = 12000
	StartMarkerMissing ErrorCode = 12001
	CodeRangeNotFound  ErrorCode = 12002

	// ========== Submission Errors (13000-13999) ==========

	SubmitFailed         ErrorCode = 13000
	SubmitCommandInvalid ErrorCode = 13001
	JudgeRejected        ErrorCode = 13002
	ProblemHeaderMissing ErrorCode = 13003
)

// errorMessages maps error codes to their default messages
var errorMessages = map[ErrorCode]string{
	Success: "Success",

	// Generic
	InternalServerError: "Internal error",
	InvalidParams:       "Invalid parameters",
	NotFound:            "Resource not found",
	Timeout:             "Operation timeout",

	// Configuration
	ConfigLoadFailed:      "Failed to load configuration",
	ConfigInvalid:         "Invalid configuration",
	CodeFileNotConfigured: "Please specify the default code file path in the settings.",

	// File system
	FileReadFailed:  "Failed to read file",
	FileWriteFailed: "Failed to write file",

	// Session
	NotSignedIn:       "Please sign in first.",
	SessionLoadFailed: "Failed to load session state",
	SessionSaveFailed: "Failed to save session state",

	// Document
	NoActiveDocument:   "Please open a solution file first.",
	StartMarkerMissing: "Please add '// @lc code=start' in your solution file.",
	CodeRangeNotFound:  "No code block found between the '@lc code' markers.",

	// Submission
	SubmitFailed:         "Failed to submit the solution. Please open the output channel for details.",
	SubmitCommandInvalid: "Invalid submit command",
	JudgeRejected:        "The judge rejected the submission request",
	ProblemHeaderMissing: "No '@lc app=... id=...' header found in the code file",
}

// Severity tells how an error is presented to the user.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// Severity returns how the code should be reported.
func (c ErrorCode) Severity() Severity {
	if c == CodeRangeNotFound {
		return SeverityWarning
	}
	return SeverityError
}

// ExitCode returns the process exit status for the error code
func (c ErrorCode) ExitCode() int {
	switch {
	case c == Success:
		return 0
	case c >= 10100 && c < 10200: // Configuration errors
		return 3
	case c >= 11000 && c < 12000: // Session errors
		return 4
	case c >= 12000 && c < 13000: // Document errors
		return 5
	case c >= 13000 && c < 14000: // Submission errors
		return 6
	case c == InvalidParams:
		return 2
	default:
		return 1
	}
}
