package timing

import (
	"strings"
	"testing"
	"time"
)

func TestTimer_Basic(t *testing.T) {
	timer := NewTimer()

	time.Sleep(10 * time.Millisecond)
	timer.Mark("load")

	time.Sleep(10 * time.Millisecond)
	timer.Mark("complete")

	elapsed := timer.Elapsed()
	if elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms, got %v", elapsed)
	}

	if d, ok := timer.Get("load"); !ok {
		t.Error("load mark not found")
	} else if d < 10*time.Millisecond {
		t.Errorf("load should be >= 10ms, got %v", d)
	}

	if d, ok := timer.Get("complete"); !ok {
		t.Error("complete mark not found")
	} else if d < 20*time.Millisecond {
		t.Errorf("complete should be >= 20ms, got %v", d)
	}

	if _, ok := timer.Get("missing"); ok {
		t.Error("missing mark should not be found")
	}
}

func TestTimer_Summary(t *testing.T) {
	timer := NewTimer()

	time.Sleep(5 * time.Millisecond)
	timer.Mark("load")

	time.Sleep(5 * time.Millisecond)
	timer.Mark("complete")

	summary := timer.Summary()

	if !strings.Contains(summary, "Total:") {
		t.Errorf("Summary should contain 'Total:', got: %s", summary)
	}
	if !strings.Contains(summary, "load:") {
		t.Errorf("Summary should contain 'load:', got: %s", summary)
	}
	if !strings.Contains(summary, "complete:") {
		t.Errorf("Summary should contain 'complete:', got: %s", summary)
	}

	// Marks appear in the order they were recorded.
	if strings.Index(summary, "load:") > strings.Index(summary, "complete:") {
		t.Errorf("Summary should list marks in order, got: %s", summary)
	}
}

func TestTimer_SummaryWithoutMarks(t *testing.T) {
	timer := NewTimer()
	summary := timer.Summary()

	if !strings.Contains(summary, "Total:") {
		t.Errorf("Summary should contain 'Total:', got: %s", summary)
	}
	if strings.Contains(summary, "(") {
		t.Errorf("Summary without marks should have no breakdown, got: %s", summary)
	}
}
