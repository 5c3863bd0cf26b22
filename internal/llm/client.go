// Package llm provides the text-generation clients used by the borderline
// review layer. The deterministic dedup engine never depends on this
// package.
package llm

import "context"

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
