// internal/errors/errors.go
package errors

import "fmt"

// ErrInvalidRepoURL is returned when a user-supplied repository URL is not in
// 'https://github.com/<owner>/<repo>' form.
type ErrInvalidRepoURL struct {
	URL string
}

func (e *ErrInvalidRepoURL) Error() string {
	return fmt.Sprintf("invalid repository URL: %q, expected 'https://github.com/<owner>/<repo>'", e.URL)
}

// ErrUnknownAction is returned when the fetch dispatcher receives an action
// outside the recognized set. The router filters these out, so hitting this
// indicates a programming error.
type ErrUnknownAction struct {
	Action string
}

func (e *ErrUnknownAction) Error() string {
	return fmt.Sprintf("unknown action: %q", e.Action)
}
