package enhance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/handleui/refract/diag"
)

// maxConcurrentEnhancements bounds the fan-out of All. Enhancement is
// CPU-only regex scanning, so a small limit avoids goroutine churn on
// large diagnostic batches.
const maxConcurrentEnhancements = 8

// Item pairs a diagnostic with the original source of the file it was
// reported against.
type Item struct {
	Diagnostic diag.Diagnostic
	Source     string
}

// All enhances a batch of independent diagnostics in parallel.
// Results are returned in input order. Each item is enhanced against its
// own source; items never share a diagnostic value, so no synchronization
// is needed beyond the group itself. The only error All can return is the
// context's, when it is cancelled mid-batch.
func All(ctx context.Context, items []Item, preprocessors ...Preprocessor) ([]diag.Diagnostic, error) {
	out := make([]diag.Diagnostic, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEnhancements)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Enhance(item.Diagnostic, item.Source, preprocessors...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
