package cli

// ExitError carries the message to print on stderr and the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func fail(err error) *ExitError {
	return &ExitError{Code: 1, Message: "Error: " + err.Error()}
}
