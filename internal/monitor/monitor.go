// Package monitor samples system load in the background. The pet consults it
// to act stressed (and stay awake) when the machine is busy.
package monitor

import (
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

const sampleInterval = 2 * time.Second

// Stats is one snapshot, percentages rounded to one decimal.
type Stats struct {
	CPU float64
	Mem float64
}

type Monitor struct {
	mu        sync.Mutex
	stats     Stats
	threshold float64
	logger    *zap.Logger
	stop      chan struct{}
	once      sync.Once
}

func New(threshold float64, logger *zap.Logger) *Monitor {
	return &Monitor{
		threshold: threshold,
		logger:    logger,
		stop:      make(chan struct{}),
	}
}

// Start launches the sampling goroutine. Call once.
func (m *Monitor) Start() {
	go func() {
		ticker := time.NewTicker(sampleInterval)
		defer ticker.Stop()
		m.sample()
		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *Monitor) Stop() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Monitor) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Stressed reports whether CPU usage is at or above the threshold.
func (m *Monitor) Stressed() bool {
	return m.Snapshot().CPU >= m.threshold
}

func (m *Monitor) sample() {
	var s Stats

	v, err := mem.VirtualMemory()
	if err == nil {
		s.Mem = v.UsedPercent
	} else {
		m.logger.Debug("memory sample failed", zap.Error(err))
	}

	// Interval 0 measures against the previous call instead of blocking.
	c, err := cpu.Percent(0, false)
	if err == nil && len(c) > 0 {
		s.CPU = c[0]
	} else if err != nil {
		m.logger.Debug("cpu sample failed", zap.Error(err))
	}

	s.CPU = math.Round(s.CPU*10) / 10
	s.Mem = math.Round(s.Mem*10) / 10

	m.mu.Lock()
	m.stats = s
	m.mu.Unlock()
}
