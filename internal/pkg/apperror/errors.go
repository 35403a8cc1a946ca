package apperror

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitInvalidArgument = 2
	ExitGridConversion  = 3
)

type AppError struct {
	Code     string
	Message  string
	ExitCode int
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string, err error) *AppError {
	return &AppError{
		Code:     "INVALID_ARGUMENT",
		Message:  message,
		ExitCode: ExitInvalidArgument,
		Err:      err,
	}
}

func GridConversion(err error) *AppError {
	return &AppError{
		Code:     "GRID_CONVERSION",
		Message:  "could not convert grid reference",
		ExitCode: ExitGridConversion,
		Err:      err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Message:  "an internal error occurred",
		ExitCode: ExitInternal,
		Err:      err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:     appErr.Code,
			Message:  message,
			ExitCode: appErr.ExitCode,
			Err:      err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// ExitCode maps err to a process exit code; unclassified errors are internal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return ExitInternal
}
