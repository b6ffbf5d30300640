package redaxios

import "context"

// CancelToken is an abort-controller-shaped cancellation primitive. The
// pipeline defines no timeout or cancellation of its own; the token's
// context is simply delegated to the transport.
type CancelToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewCancelToken derives a cancelable context from parent. A nil parent uses
// context.Background().
func NewCancelToken(parent context.Context) *CancelToken {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &CancelToken{ctx: ctx, cancel: cancel}
}

// Context returns the context to pass into a request.
func (t *CancelToken) Context() context.Context {
	return t.ctx
}

// Cancel aborts every request issued with this token's context.
func (t *CancelToken) Cancel() {
	t.cancel()
}

// Canceled reports whether the token has been canceled.
func (t *CancelToken) Canceled() bool {
	return t.ctx.Err() != nil
}
