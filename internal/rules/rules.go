// Package rules implements the per-kind release gating rules. Every evaluator
// is a pure function of the clock and the state handed to it, so the same code
// runs from request handlers and from the periodic sweep.
package rules

import "time"

// Result is the outcome of evaluating one rule for one release target and
// candidate version.
type Result struct {
	// Allow reports whether the rule permits dispatch right now.
	Allow bool
	// Reason describes the denial for diagnostics; empty when allowed.
	Reason string
	// RetryAt, when set, is the earliest time re-evaluation can change the
	// outcome. Nil with Allow=false means re-check on the next sweep.
	RetryAt *time.Time
	// Permanent marks a denial that no amount of waiting can lift, such as a
	// rejected approval or an expired dependency gate.
	Permanent bool
}

// Allowed returns a passing result
func Allowed() Result {
	return Result{Allow: true}
}

// Denied returns a denial re-checked on the next sweep
func Denied(reason string) Result {
	return Result{Allow: false, Reason: reason}
}

// DeniedUntil returns a denial that becomes worth re-checking at t
func DeniedUntil(reason string, t time.Time) Result {
	return Result{Allow: false, Reason: reason, RetryAt: &t}
}

// Blocked returns a terminal denial
func Blocked(reason string) Result {
	return Result{Allow: false, Reason: reason, Permanent: true}
}
