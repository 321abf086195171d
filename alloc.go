package sortbench

import (
	"errors"
	"fmt"
)

// ErrAllocLimit is the cause of an AllocError raised by an allocator limit.
var ErrAllocLimit = errors.New("allocation limit exceeded")

// Allocator hands out integer buffers.
type Allocator interface {
	// Alloc returns a zeroed buffer of n elements. what names the buffer
	// for error messages.
	Alloc(what string, n int) ([]int32, error)
}

// Releaser is implemented by allocators that want buffers handed back once
// their user is done with them.
type Releaser interface {
	Release(buf []int32)
}

// AllocError reports a buffer that could not be obtained.
type AllocError struct {
	What     string // buffer description, e.g. "trial array"
	Elements int    // requested length
	Err      error  // underlying cause
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocating %s (%d elements): %v", e.What, e.Elements, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct {
	// Limit is the largest request in elements that will be served.
	// Zero means no limit.
	Limit int
}

// Alloc implements Allocator. Requests over the limit, negative lengths,
// and lengths the runtime rejects are reported as *AllocError.
func (h HeapAllocator) Alloc(what string, n int) (buf []int32, err error) {
	if n < 0 {
		return nil, &AllocError{What: what, Elements: n, Err: errors.New("negative length")}
	}
	if h.Limit > 0 && n > h.Limit {
		return nil, &AllocError{What: what, Elements: n, Err: ErrAllocLimit}
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &AllocError{What: what, Elements: n, Err: fmt.Errorf("%v", r)}
		}
	}()
	return make([]int32, n), nil
}
