package convert

import (
	"fmt"
	"strings"
)

// Tracker collects per-stage conversion results in the order they ran.
type Tracker struct {
	names   []string
	results map[string]Result
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{results: make(map[string]Result)}
}

// Add records the result of a named stage.
func (t *Tracker) Add(name string, result Result) {
	if _, ok := t.results[name]; !ok {
		t.names = append(t.names, name)
	}
	t.results[name] = result
}

// TotalConverted returns the number of successful conversions across stages.
func (t *Tracker) TotalConverted() int {
	n := 0
	for _, r := range t.results {
		n += r.Successful
	}
	return n
}

// TotalFailed returns the number of failed conversions across stages.
func (t *Tracker) TotalFailed() int {
	n := 0
	for _, r := range t.results {
		n += r.Failed
	}
	return n
}

// Summary renders a per-stage breakdown followed by the totals. Stages that
// processed nothing are omitted.
func (t *Tracker) Summary() string {
	var b strings.Builder
	b.WriteString("Conversion summary:\n")
	for _, name := range t.names {
		r := t.results[name]
		if r.Total == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s: %d/%d converted", name, r.Successful, r.Total)
		if r.Failed > 0 {
			fmt.Fprintf(&b, " (%d failed)", r.Failed)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total converted: %d", t.TotalConverted())
	if failed := t.TotalFailed(); failed > 0 {
		fmt.Fprintf(&b, "\nTotal failed: %d", failed)
	}
	return b.String()
}
