package finance

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/finskema"
)

// Outcome is the validation result of one document in a batch.
type Outcome struct {
	Index  int
	Value  map[string]any
	Issues finskema.Issues
}

// OK reports whether the document passed.
func (o Outcome) OK() bool { return len(o.Issues) == 0 }

// ValidateBatch validates docs against one entity contract with at most
// workers concurrent validations. Outcomes are returned in input order.
// Validation failures are reported per outcome; the returned error is only
// set when ctx ends before every document was checked.
func ValidateBatch(ctx context.Context, e Entity, op finskema.Operation, docs []any, workers int) ([]Outcome, error) {
	if e == nil {
		return nil, errors.New("finance: nil entity")
	}
	if workers < 1 {
		workers = 1
	}
	out := make([]Outcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Canonical(gctx, op, doc)
			out[i] = Outcome{Index: i, Value: v}
			if err != nil {
				iss, ok := finskema.AsIssues(err)
				if !ok {
					return err
				}
				out[i].Issues = iss
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
