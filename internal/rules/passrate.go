package rules

import "fmt"

// PassRateGate requires an externally observed metric to meet a threshold
// before progression. Too few samples is a denial, never a failure: the gate
// simply waits for more data.
type PassRateGate struct {
	MetricName    string
	MinPassRate   float64 // 0..1
	MinSampleSize int
}

// Evaluate checks the observed pass rate over the rule's trailing window. The
// caller supplies the sample counts for that window.
func (g PassRateGate) Evaluate(totalSamples, passedSamples int) Result {
	if totalSamples < g.MinSampleSize {
		return Denied(fmt.Sprintf("metric %q has %d of %d required samples", g.MetricName, totalSamples, g.MinSampleSize))
	}
	rate := float64(passedSamples) / float64(totalSamples)
	if rate < g.MinPassRate {
		return Denied(fmt.Sprintf("metric %q pass rate %.2f below threshold %.2f", g.MetricName, rate, g.MinPassRate))
	}
	return Allowed()
}
