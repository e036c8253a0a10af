// Package anim drives the pet's animation: six modes, linear frame
// advancement, and a weighted random pick of the next mode every time a
// cycle wraps.
package anim

import (
	"math/rand"
	"time"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeIdleToSleep
	ModeSleep
	ModeSleepToIdle
	ModeWalkLeft
	ModeWalkRight
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeIdleToSleep:
		return "idle_to_sleep"
	case ModeSleep:
		return "sleep"
	case ModeSleepToIdle:
		return "sleep_to_idle"
	case ModeWalkLeft:
		return "walk_left"
	case ModeWalkRight:
		return "walk_right"
	}
	return "unknown"
}

// Modes lists every mode, in sprite-loading order.
var Modes = []Mode{ModeIdle, ModeIdleToSleep, ModeSleep, ModeSleepToIdle, ModeWalkLeft, ModeWalkRight}

// WalkStep is how many pixels the pet moves per walking frame.
const WalkStep = 3

// intervals is the delay between frames of each mode. Idle is lazy, sleep is
// lazier, transitions and walking run at full clip.
var intervals = map[Mode]time.Duration{
	ModeIdle:        400 * time.Millisecond,
	ModeIdleToSleep: 100 * time.Millisecond,
	ModeSleep:       1000 * time.Millisecond,
	ModeSleepToIdle: 100 * time.Millisecond,
	ModeWalkLeft:    100 * time.Millisecond,
	ModeWalkRight:   100 * time.Millisecond,
}

// transitions is the weighted table consulted when a cycle completes:
// repeated entries raise a mode's odds. Idle (and both walks) stay idle 4/9
// of the time, doze off 1/9, and wander 4/9; sleep keeps sleeping 5/6.
var transitions = map[Mode][]Mode{
	ModeIdle:        {ModeIdle, ModeIdle, ModeIdle, ModeIdle, ModeIdleToSleep, ModeWalkLeft, ModeWalkLeft, ModeWalkRight, ModeWalkRight},
	ModeIdleToSleep: {ModeSleep},
	ModeSleep:       {ModeSleep, ModeSleep, ModeSleep, ModeSleep, ModeSleep, ModeSleepToIdle},
	ModeSleepToIdle: {ModeIdle},
	ModeWalkLeft:    {ModeIdle, ModeIdle, ModeIdle, ModeIdle, ModeIdleToSleep, ModeWalkLeft, ModeWalkLeft, ModeWalkRight, ModeWalkRight},
	ModeWalkRight:   {ModeIdle, ModeIdle, ModeIdle, ModeIdle, ModeIdleToSleep, ModeWalkLeft, ModeWalkLeft, ModeWalkRight, ModeWalkRight},
}

// Cycler holds the current mode and frame index and steps them forward.
type Cycler struct {
	mode     Mode
	frame    int
	counts   map[Mode]int
	rng      *rand.Rand
	stressed func() bool
}

type Option func(*Cycler)

// WithRand replaces the random source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Cycler) { c.rng = r }
}

// WithStress installs a predicate that, while true, keeps the pet awake:
// idle never dozes off and sleep ends at the next cycle.
func WithStress(f func() bool) Option {
	return func(c *Cycler) { c.stressed = f }
}

// New builds a cycler starting in idle. counts maps each mode to its frame
// count and must cover every mode.
func New(counts map[Mode]int, opts ...Option) *Cycler {
	c := &Cycler{
		mode:   ModeIdle,
		counts: counts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cycler) Mode() Mode { return c.mode }

func (c *Cycler) Frame() int { return c.frame }

// Interval is the delay before the next Step for the current mode.
func (c *Cycler) Interval() time.Duration { return intervals[c.mode] }

// Force switches to the given mode immediately, restarting its cycle.
func (c *Cycler) Force(m Mode) {
	c.mode = m
	c.frame = 0
}

// Step advances one frame. When the current cycle wraps it draws the next
// mode. The returned dx is the horizontal movement this frame contributes
// (negative for walk-left, positive for walk-right, zero otherwise).
func (c *Cycler) Step() (dx int) {
	switch c.mode {
	case ModeWalkLeft:
		dx = -WalkStep
	case ModeWalkRight:
		dx = WalkStep
	}

	if c.frame < c.counts[c.mode]-1 {
		c.frame++
		return dx
	}
	c.frame = 0
	c.mode = c.next()
	return dx
}

func (c *Cycler) next() Mode {
	if c.stressed != nil && c.stressed() {
		if c.mode == ModeSleep {
			return ModeSleepToIdle
		}
	}
	choices := transitions[c.mode]
	pick := choices[c.rng.Intn(len(choices))]
	if pick == ModeIdleToSleep && c.stressed != nil && c.stressed() {
		return ModeIdle
	}
	return pick
}
