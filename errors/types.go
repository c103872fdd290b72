package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Repository reference errors
	ErrCodeInvalidRepoFormat ErrorCode = "INVALID_REPO_FORMAT"

	// Sync errors
	ErrCodeDirRemoveFailed ErrorCode = "DIR_REMOVE_FAILED"
	ErrCodeCloneFailed     ErrorCode = "CLONE_FAILED"
	ErrCodePullFailed      ErrorCode = "PULL_FAILED"
	ErrCodeRepoNotFound    ErrorCode = "REPO_NOT_FOUND"

	// Script execution errors
	ErrCodeScriptNotFound    ErrorCode = "SCRIPT_NOT_FOUND"
	ErrCodeScriptNotAFile    ErrorCode = "SCRIPT_NOT_A_FILE"
	ErrCodePathTraversal     ErrorCode = "PATH_TRAVERSAL"
	ErrCodeInvalidScriptPath ErrorCode = "INVALID_SCRIPT_PATH"
	ErrCodeExecLaunchFailed  ErrorCode = "EXEC_LAUNCH_FAILED"

	// Remote listing errors
	ErrCodeRemoteListFailed   ErrorCode = "REMOTE_LIST_FAILED"
	ErrCodeRemoteUnauthorized ErrorCode = "REMOTE_UNAUTHORIZED"
	ErrCodeRemoteForbidden    ErrorCode = "REMOTE_FORBIDDEN"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// MygitError represents a structured error with context
type MygitError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *MygitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MygitError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *MygitError) WithDetail(key string, value interface{}) *MygitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *MygitError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new MygitError
func New(code ErrorCode, message string) *MygitError {
	return &MygitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a MygitError
func Wrap(err error, code ErrorCode, message string) *MygitError {
	return &MygitError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific MygitError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	mErr, ok := err.(*MygitError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return mErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	mErr, ok := err.(*MygitError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return mErr.Code
}
