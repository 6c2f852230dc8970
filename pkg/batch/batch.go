// Package batch generates notes for a list of expressions concurrently
// while preserving input order in the results.
package batch

import (
	"context"

	"notegen/pkg/anki"
)

// BuildFunc produces a note for one expression. Implementations must be
// safe for concurrent use.
type BuildFunc func(ctx context.Context, expression string) (anki.Note, error)

// Result pairs one input expression with its note or failure. Index is
// the expression's position in the input list.
type Result struct {
	Index      int
	Expression string
	Note       anki.Note
	Err        error
}

// Generate builds a note for every expression using up to workers
// goroutines. Results come back in input order, and one expression
// failing never affects the others. When ctx is cancelled before all
// expressions are processed, the unprocessed entries carry ctx.Err().
func Generate(ctx context.Context, expressions []string, workers int, build BuildFunc) []Result {
	results := make([]Result, len(expressions))
	processed := make([]bool, len(expressions))
	for i, expr := range expressions {
		results[i] = Result{Index: i, Expression: expr}
	}

	pool := NewWorkerPool(workers, len(expressions))
	pool.Start(ctx)

	for i := range expressions {
		i := i
		err := pool.Submit(func(jobCtx context.Context) error {
			// Each job owns a distinct index, so no locking is needed.
			note, err := build(jobCtx, expressions[i])
			results[i].Note = note
			results[i].Err = err
			processed[i] = true
			return err
		})
		if err != nil {
			results[i].Err = err
			processed[i] = true
		}
	}
	pool.Close()

	if ctxErr := ctx.Err(); ctxErr != nil {
		for i := range results {
			if !processed[i] {
				results[i].Err = ctxErr
			}
		}
	}
	return results
}
