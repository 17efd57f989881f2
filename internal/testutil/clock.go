// Package testutil provides testing utilities.
package testutil

import "time"

// Epoch is the first time a FakeClock returns by default.
var Epoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// FakeClock is a deterministic time source. Every call to Now returns the
// current time and then advances it by Step, so successive timestamps are
// strictly increasing when Step is positive.
type FakeClock struct {
	now  time.Time
	Step time.Duration

	calls int
}

// NewFakeClock creates a FakeClock starting at Epoch that advances one
// second per reading.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch, Step: time.Second}
}

// Now returns the current fake time and advances the clock.
func (c *FakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.Step)
	c.calls++
	return t
}

// Peek returns the time the next call to Now will return.
func (c *FakeClock) Peek() time.Time { return c.now }

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) { c.now = t }

// Calls returns how many times Now has been read.
func (c *FakeClock) Calls() int { return c.calls }
