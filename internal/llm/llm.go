// internal/llm/llm.go
package llm

import "context"

// Client is the single model capability the pipeline depends on: one
// completion call taking a system instruction and a user message, returning
// trimmed text. The hosted and local backends both implement it; everything
// downstream is agnostic to which one is in use.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
