package models

import "time"

// ReachabilityState identifies which variant of a probe outcome applies.
type ReachabilityState string

const (
	StateReachable   ReachabilityState = "reachable"   // target answered before the deadline
	StateUnreachable ReachabilityState = "unreachable" // target did not answer
	StateUnknown     ReachabilityState = "unknown"     // no probe could run
	StateTimeout     ReachabilityState = "timeout"     // deadline expired with no answer
)

// ReachabilityStatus is the outcome of a single reachability probe. Exactly one
// state applies; LatencyMs carries the measured round-trip time when one was
// measured and is zero otherwise.
type ReachabilityStatus struct {
	State     ReachabilityState `json:"state"`
	LatencyMs float64           `json:"latency_ms,omitempty"`
}

// Reachable builds a reachable status carrying the measured elapsed time.
func Reachable(elapsed time.Duration) ReachabilityStatus {
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	return ReachabilityStatus{State: StateReachable, LatencyMs: ms}
}

// Unreachable builds a negative probe outcome.
func Unreachable() ReachabilityStatus {
	return ReachabilityStatus{State: StateUnreachable}
}

// Unknown builds the no-probe-was-possible outcome.
func Unknown() ReachabilityStatus {
	return ReachabilityStatus{State: StateUnknown}
}

// Timeout builds the deadline-expired outcome.
func Timeout() ReachabilityStatus {
	return ReachabilityStatus{State: StateTimeout}
}

// IsReachable reports whether the status is the reachable variant.
func (s ReachabilityStatus) IsReachable() bool {
	return s.State == StateReachable
}

// NetworkStatus is one immutable point-in-time snapshot of gateway, internet,
// and DNS reachability. Timestamp is captured once, after all three checks
// have completed.
type NetworkStatus struct {
	Gateway   ReachabilityStatus `json:"gateway"`
	Internet  ReachabilityStatus `json:"internet"`
	DNS       ReachabilityStatus `json:"dns"`
	Timestamp time.Time          `json:"timestamp"`
}
