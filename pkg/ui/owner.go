package ui

import "sync"

// Cleanup releases a resource acquired in an Owner scope.
type Cleanup func()

// Owner is a lifecycle scope. Resources acquired while a view is mounted
// register a cleanup with the view's owner; disposing the owner releases them.
type Owner struct {
	mu       sync.Mutex
	cleanups []func()
	disposed bool
}

// NewOwner creates an empty, live Owner.
func NewOwner() *Owner {
	return &Owner{}
}

// OnCleanup registers fn to run when the owner is disposed.
// If the owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

// IsDisposed returns true if the owner has been disposed.
func (o *Owner) IsDisposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

// Pending returns the number of registered cleanups that have not run.
func (o *Owner) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.cleanups)
}

// Dispose runs every registered cleanup, last registered first.
// Calling Dispose more than once is a no-op.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
