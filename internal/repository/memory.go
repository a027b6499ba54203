package repository

import "time"

// FixtureLatency is the simulated round-trip applied to every mock-mode
// call so the panel behaves like it is talking to a real backend. Tests may
// lower it.
var FixtureLatency = 10 * time.Millisecond

func simulateLatency() {
	if FixtureLatency > 0 {
		time.Sleep(FixtureLatency)
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyHours(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
