package orchestrator

import "fmt"

// PersistenceError reports an output artifact that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("orchestrator: persist output: %v", e.Err)
	}
	return fmt.Sprintf("orchestrator: persist output to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
