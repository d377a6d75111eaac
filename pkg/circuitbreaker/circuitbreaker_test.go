package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

func failing() (interface{}, error) { return nil, errBoom }

func succeeding() (interface{}, error) { return "ok", nil }

func TestTripsAfterConsecutiveFailures(t *testing.T) {
	cb := New(2, 1, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cb.Execute(failing); !errors.Is(err, errBoom) {
			t.Fatalf("call %d: expected operation error, got %v", i+1, err)
		}
	}
	if got := cb.State(); got != Open {
		t.Fatalf("expected Open after 2 failures, got %s", got)
	}

	if _, err := cb.Execute(succeeding); !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen while open, got %v", err)
	}
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(2, 1, time.Minute)

	cb.Execute(failing)
	cb.Execute(succeeding)
	cb.Execute(failing)

	if got := cb.State(); got != Closed {
		t.Errorf("non-consecutive failures should not trip the circuit, state=%s", got)
	}
}

func TestHalfOpenRecovery(t *testing.T) {
	cb := New(1, 2, 20*time.Millisecond)

	cb.Execute(failing)
	if got := cb.State(); got != Open {
		t.Fatalf("expected Open, got %s", got)
	}

	time.Sleep(30 * time.Millisecond)

	// First trial request moves the breaker to half-open.
	if _, err := cb.Execute(succeeding); err != nil {
		t.Fatalf("trial request should pass after timeout: %v", err)
	}
	if got := cb.State(); got != HalfOpen {
		t.Fatalf("expected HalfOpen after one trial success, got %s", got)
	}

	if _, err := cb.Execute(succeeding); err != nil {
		t.Fatalf("second trial request failed: %v", err)
	}
	if got := cb.State(); got != Closed {
		t.Errorf("expected Closed after reaching the success threshold, got %s", got)
	}
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := New(1, 2, 20*time.Millisecond)

	cb.Execute(failing)
	time.Sleep(30 * time.Millisecond)

	if _, err := cb.Execute(failing); !errors.Is(err, errBoom) {
		t.Fatalf("expected operation error in half-open, got %v", err)
	}
	if got := cb.State(); got != Open {
		t.Errorf("a half-open failure should reopen the circuit, got %s", got)
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		Closed:   "Closed",
		Open:     "Open",
		HalfOpen: "Half-Open",
		State(9): "Unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
