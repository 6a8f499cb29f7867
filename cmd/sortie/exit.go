package sortie

import "errors"

// ExitInterrupted is the exit code of a run stopped by SIGINT
const ExitInterrupted = 130

// ExitError carries the process exit code for a command error
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
