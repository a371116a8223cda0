package models

import (
	"testing"
	"time"
)

func TestReachabilityConstructors(t *testing.T) {
	tests := []struct {
		name      string
		status    ReachabilityStatus
		wantState ReachabilityState
		reachable bool
	}{
		{"reachable", Reachable(42 * time.Millisecond), StateReachable, true},
		{"unreachable", Unreachable(), StateUnreachable, false},
		{"unknown", Unknown(), StateUnknown, false},
		{"timeout", Timeout(), StateTimeout, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.status.State != tt.wantState {
				t.Errorf("state = %q, want %q", tt.status.State, tt.wantState)
			}
			if got := tt.status.IsReachable(); got != tt.reachable {
				t.Errorf("IsReachable() = %v, want %v", got, tt.reachable)
			}
		})
	}
}

func TestReachableLatency(t *testing.T) {
	s := Reachable(1500 * time.Millisecond)
	if s.LatencyMs != 1500 {
		t.Errorf("LatencyMs = %v, want 1500", s.LatencyMs)
	}

	sub := Reachable(250 * time.Microsecond)
	if sub.LatencyMs != 0.25 {
		t.Errorf("sub-millisecond LatencyMs = %v, want 0.25", sub.LatencyMs)
	}

	neg := Reachable(-1 * time.Second)
	if neg.LatencyMs != 0 {
		t.Errorf("negative elapsed LatencyMs = %v, want 0", neg.LatencyMs)
	}
}

func TestNonReachableCarryNoLatency(t *testing.T) {
	for _, s := range []ReachabilityStatus{Unreachable(), Unknown(), Timeout()} {
		if s.LatencyMs != 0 {
			t.Errorf("state %q LatencyMs = %v, want 0", s.State, s.LatencyMs)
		}
	}
}
