package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"notegen/pkg/anki"
)

func TestGeneratePreservesOrder(t *testing.T) {
	expressions := make([]string, 50)
	for i := range expressions {
		expressions[i] = fmt.Sprintf("word%02d", i)
	}

	build := func(ctx context.Context, expr string) (anki.Note, error) {
		// Stagger completion so results would interleave without ordering.
		time.Sleep(time.Millisecond)
		return anki.Note{Fields: map[string]string{"expression": expr}}, nil
	}

	results := Generate(context.Background(), expressions, 8, build)
	if len(results) != len(expressions) {
		t.Fatalf("got %d results, want %d", len(results), len(expressions))
	}
	for i, r := range results {
		if r.Index != i || r.Expression != expressions[i] {
			t.Errorf("result %d = {Index: %d, Expression: %q}, want index %d expression %q",
				i, r.Index, r.Expression, i, expressions[i])
		}
		if r.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, r.Err)
		}
		if got := r.Note.Fields["expression"]; got != expressions[i] {
			t.Errorf("result %d: note built for %q, want %q", i, got, expressions[i])
		}
	}
}

func TestGenerateIsolatesFailures(t *testing.T) {
	expressions := []string{"猫", "bad", "犬"}
	buildErr := errors.New("no entry found")

	build := func(ctx context.Context, expr string) (anki.Note, error) {
		if expr == "bad" {
			return anki.Note{}, buildErr
		}
		return anki.Note{Fields: map[string]string{"expression": expr}}, nil
	}

	results := Generate(context.Background(), expressions, 2, build)
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy expressions failed: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, buildErr) {
		t.Errorf("result 1 error = %v, want %v", results[1].Err, buildErr)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	expressions := []string{"a", "b", "c", "d"}
	build := func(ctx context.Context, expr string) (anki.Note, error) {
		return anki.Note{}, nil
	}

	results := Generate(ctx, expressions, 2, build)
	for i, r := range results {
		// With the context already cancelled, workers exit without
		// draining the queue; anything unprocessed reports the reason.
		if r.Err != nil && !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d: error = %v, want nil or context.Canceled", i, r.Err)
		}
	}
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	pool.Start(context.Background())
	pool.Close()

	err := pool.Submit(func(ctx context.Context) error { return nil })
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Submit after Close = %v, want ErrPoolClosed", err)
	}
	if err != nil && !strings.Contains(err.Error(), "closed") {
		t.Errorf("error message %q should mention closed", err.Error())
	}
}

func TestWorkerPoolCloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Start(context.Background())
	pool.Close()
	pool.Close() // must not panic
}
