package t2048

import (
	"testing"
	"time"
)

func TestSignalResolveOnce(t *testing.T) {
	s := NewSignal()
	if s.IsResolved() {
		t.Fatal("new signal should be pending")
	}
	s.Resolve()
	s.Resolve() // second call is a no-op
	if !s.IsResolved() {
		t.Fatal("signal should be resolved")
	}
	s.Wait()
}

func TestResolved(t *testing.T) {
	if !Resolved().IsResolved() {
		t.Error("Resolved() should already be resolved")
	}
}

func TestSignalWaitUnblocks(t *testing.T) {
	s := NewSignal()
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Resolve")
	case <-time.After(10 * time.Millisecond):
	}

	s.Resolve()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Resolve")
	}
}

func TestJoin(t *testing.T) {
	a, b := NewSignal(), NewSignal()
	j := Join{a, b, Resolved()}

	if j.Ready() {
		t.Error("join with pending signals should not be ready")
	}
	if j.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", j.Pending())
	}

	a.Resolve()
	if j.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", j.Pending())
	}

	b.Resolve()
	if !j.Ready() {
		t.Error("join should be ready once every signal resolved")
	}
	j.Wait()

	var empty Join
	if !empty.Ready() {
		t.Error("empty join should be ready")
	}
}
