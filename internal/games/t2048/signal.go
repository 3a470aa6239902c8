package t2048

import "sync"

// Signal is a one-shot completion handle for a visual transition. The
// visual collaborator resolves it when the transition ends; the engine only
// ever waits on it.
type Signal struct {
	once sync.Once
	done chan struct{}
}

// NewSignal returns an unresolved signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Resolved returns a signal that has already completed.
func Resolved() *Signal {
	s := NewSignal()
	s.Resolve()
	return s
}

// Resolve marks the transition as finished. Safe to call more than once and
// from any goroutine.
func (s *Signal) Resolve() {
	s.once.Do(func() { close(s.done) })
}

// Done returns a channel closed on resolution.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// IsResolved reports whether the signal has completed, without blocking.
func (s *Signal) IsResolved() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the signal resolves. A signal that never resolves
// stalls the caller forever.
func (s *Signal) Wait() {
	<-s.done
}

// Join is the fan-in over every signal started during one move.
type Join []*Signal

// Ready reports whether every signal in the join has resolved.
func (j Join) Ready() bool {
	for _, s := range j {
		if !s.IsResolved() {
			return false
		}
	}
	return true
}

// Pending returns how many signals are still unresolved.
func (j Join) Pending() int {
	n := 0
	for _, s := range j {
		if !s.IsResolved() {
			n++
		}
	}
	return n
}

// Wait blocks until every signal has resolved.
func (j Join) Wait() {
	for _, s := range j {
		s.Wait()
	}
}
