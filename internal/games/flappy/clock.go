package flappy

import "time"

// SpawnClock decides when the next obstacle is due.
// The game passes its tick counter; clocks that measure real time may
// ignore it.
type SpawnClock interface {
	// Restart treats the given tick as the moment of the last spawn.
	Restart(tick uint64)
	// Due reports whether a spawn is due at tick and, if so, records it.
	Due(tick uint64) bool
}

// TickClock spawns every Interval simulation ticks. It is deterministic and
// does not depend on the frame rate the frontend achieves.
type TickClock struct {
	Interval uint64
	last     uint64
}

// NewTickClock returns a tick clock with the given interval.
// A zero interval falls back to SpawnIntervalTicks.
func NewTickClock(interval uint64) *TickClock {
	if interval == 0 {
		interval = SpawnIntervalTicks
	}
	return &TickClock{Interval: interval}
}

// Restart implements SpawnClock.
func (c *TickClock) Restart(tick uint64) {
	c.last = tick
}

// Due implements SpawnClock.
func (c *TickClock) Due(tick uint64) bool {
	if tick < c.last || tick-c.last < c.Interval {
		return false
	}
	c.last = tick
	return true
}

// WallClock spawns once more than Interval of real time has elapsed since
// the last spawn. Pacing then follows the wall clock rather than the
// simulation, like the classic arcade loop.
type WallClock struct {
	Interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewWallClock returns a wall clock. A nil now uses time.Now.
func NewWallClock(interval time.Duration, now func() time.Time) *WallClock {
	if interval <= 0 {
		interval = SpawnInterval
	}
	if now == nil {
		now = time.Now
	}
	return &WallClock{Interval: interval, now: now}
}

// Restart implements SpawnClock.
func (c *WallClock) Restart(uint64) {
	c.last = c.now()
}

// Due implements SpawnClock. A clock that goes backwards never spawns.
func (c *WallClock) Due(uint64) bool {
	now := c.now()
	if now.Sub(c.last) <= c.Interval {
		return false
	}
	c.last = now
	return true
}
