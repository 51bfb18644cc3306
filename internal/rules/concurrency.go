package rules

import "fmt"

// ConcurrencyLimit caps the number of simultaneously in-progress jobs across
// the policy's scope. A denial carries no retry time: capacity frees up on job
// completion, which is observed by the next dispatch sweep.
type ConcurrencyLimit struct {
	Limit int
}

// Evaluate denies while the number of active jobs is at or over the cap
func (c ConcurrencyLimit) Evaluate(activeJobs int) Result {
	if c.Limit <= 0 {
		// an unset or nonsensical cap never throttles
		return Allowed()
	}
	if activeJobs >= c.Limit {
		return Denied(fmt.Sprintf("concurrency limit reached (%d of %d jobs active)", activeJobs, c.Limit))
	}
	return Allowed()
}
