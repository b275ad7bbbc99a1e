package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.Track("load", func() string { return "2 files" })
	idx := tm.begin("reconcile")
	tm.end(idx, "")
	tm.end(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "load" || r.Phases[0].Note != "2 files" {
		t.Fatalf("first phase = %+v", r.Phases[0])
	}
	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// 2 files") || !strings.Contains(sum, "total") {
		t.Fatalf("summary:\n%s", sum)
	}
}

func TestTimerEmpty(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("empty report = %+v", r)
	}
}
