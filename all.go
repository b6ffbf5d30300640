package redaxios

import (
	"context"
	"sync"
)

// Call is a pending request suitable for fan-out, typically a closure over a
// client verb:
//
//	redaxios.All(ctx,
//	    func(ctx context.Context) (*Response, error) { return client.Get(ctx, "/a", nil) },
//	    func(ctx context.Context) (*Response, error) { return client.Get(ctx, "/b", nil) },
//	)
type Call func(ctx context.Context) (*Response, error)

// All issues every call concurrently and waits for all of them, returning
// the responses in the original positional order regardless of individual
// completion order. If any call fails, All returns the failure of the
// lowest-indexed failing call and no responses.
func All(ctx context.Context, calls ...Call) ([]*Response, error) {
	responses := make([]*Response, len(calls))
	errs := make([]error, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call Call) {
			defer wg.Done()
			responses[i], errs[i] = call(ctx)
		}(i, call)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return responses, nil
}

// Spread adapts a function taking one value per positional argument into a
// function taking a single ordered sequence, the natural companion to All:
//
//	responses, err := redaxios.All(ctx, getUser, getPosts)
//	if err == nil {
//	    combine := redaxios.Spread(func(rs ...*Response) int { return len(rs) })
//	    n := combine(responses)
//	}
func Spread[T, R any](fn func(...T) R) func([]T) R {
	return func(args []T) R {
		return fn(args...)
	}
}
