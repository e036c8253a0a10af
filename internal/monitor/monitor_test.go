package monitor

import (
	"testing"

	"go.uber.org/zap"
)

func TestStressedThreshold(t *testing.T) {
	m := New(80, zap.NewNop())

	m.stats = Stats{CPU: 79.9}
	if m.Stressed() {
		t.Error("79.9 percent must not be stressed at threshold 80")
	}

	m.stats = Stats{CPU: 80}
	if !m.Stressed() {
		t.Error("80 percent must be stressed at threshold 80")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := New(80, zap.NewNop())
	m.stats = Stats{CPU: 12.5, Mem: 42.1}

	s := m.Snapshot()
	s.CPU = 99

	if m.Snapshot().CPU != 12.5 {
		t.Error("mutating a snapshot must not touch the monitor")
	}
}

func TestSamplePopulatesStats(t *testing.T) {
	m := New(80, zap.NewNop())
	m.sample()

	s := m.Snapshot()
	if s.Mem < 0 || s.Mem > 100 {
		t.Errorf("memory percent out of range: %v", s.Mem)
	}
	if s.CPU < 0 || s.CPU > 100 {
		t.Errorf("cpu percent out of range: %v", s.CPU)
	}
}
