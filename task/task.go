// Package task provides the minimal work-stealing-flavored runtime that the
// zoid and plan packages schedule onto: an asynchronous handle, composition
// combinators (sequential, parallel, after), a recursion primitive, and a
// strategy-picker. Spec-wise this is the engine's only consumer-side stand-in
// for the externally supplied task runtime described in the stencil
// specification's interface section; nothing upstream of this package ships
// an importable runtime with this shape, so it is implemented directly on
// goroutines and channels, in the same spirit as the teacher's own
// goroutine-and-channel StreamScheduler.
package task

import "fmt"

// Handle is a waitable reference to a scheduled unit of work. It becomes
// ready once the work completes, successfully or not.
type Handle struct {
	done chan struct{}
	err  error
}

// Wait blocks until h completes and returns its error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Async schedules fn on its own goroutine and returns a Handle for it. A
// panic inside fn is recovered and surfaced as the Handle's error, matching
// the "update function raising" failure mode: the panic propagates out of
// the enclosing task rather than crashing the process.
func Async(fn func() error) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("task: panic: %v", r)
			}
		}()
		h.err = fn()
	}()
	return h
}

// Done returns an already-completed Handle with no error.
func Done() *Handle {
	h := &Handle{done: make(chan struct{})}
	close(h.done)
	return h
}

// Failed returns an already-completed Handle carrying err.
func Failed(err error) *Handle {
	h := &Handle{done: make(chan struct{}), err: err}
	close(h.done)
	return h
}

// Deps is a small bundle of prior-task references a task must wait on before
// starting. In the zoid recursion every sub-zoid inherits its parent's Deps
// and each split appends one or two more references, so the length grows
// with recursion depth; nothing here bounds it.
type Deps []*Handle

// Wait waits for every handle in d, returning the first error encountered.
// Nil handles are skipped so a Deps built incrementally need not be
// compacted.
func (d Deps) Wait() error {
	var first error
	for _, h := range d {
		if h == nil {
			continue
		}
		if err := h.Wait(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Append returns a new Deps with extra appended, leaving d unmodified.
func (d Deps) Append(extra ...*Handle) Deps {
	out := make(Deps, 0, len(d)+len(extra))
	out = append(out, d...)
	out = append(out, extra...)
	return out
}

// After returns a Handle that completes once every ref has completed,
// carrying the first error encountered, if any.
func After(refs ...*Handle) *Handle {
	return Async(func() error {
		return Deps(refs).Wait()
	})
}

// Sequential runs fns in order on a single goroutine, stopping at the first
// error.
func Sequential(fns ...func() error) *Handle {
	return Async(func() error {
		for _, fn := range fns {
			if err := fn(); err != nil {
				return err
			}
		}
		return nil
	})
}

// Parallel runs every fn concurrently and returns a Handle that completes
// once all of them have, carrying the first error encountered.
func Parallel(fns ...func() error) *Handle {
	return Async(func() error {
		handles := make([]*Handle, len(fns))
		for i, fn := range fns {
			handles[i] = Async(fn)
		}
		return Deps(handles).Wait()
	})
}

// Prec is the recursive task primitive: it runs baseCase when isBase is
// true, divideCase otherwise. Both branches produce the Handle representing
// completion of the whole recursive unit.
func Prec(isBase bool, baseCase, divideCase func() *Handle) *Handle {
	if isBase {
		return baseCase()
	}
	return divideCase()
}

// Pick runs primary when usePrimary is true, else fallback. It lets callers
// express a single dynamic strategy choice with the same Handle-returning
// shape as every other combinator in this package. The stencil dispatcher's
// thin-domain fallback does not use it.
func Pick(usePrimary bool, primary, fallback func() *Handle) *Handle {
	if usePrimary {
		return primary()
	}
	return fallback()
}
