package version

import "sync/atomic"

// Counter is a wrapping 16-bit change counter safe for concurrent use.
// The zero value is ready to use and reads 0.
type Counter struct {
	// n is truncated to 16 bits on read. 2^32 is a multiple of 2^16, so the
	// truncated value stays consistent across the 32-bit overflow.
	n atomic.Uint32
}

// New returns a counter starting at 0.
func New() *Counter {
	return &Counter{}
}

// Increment advances the counter by one and returns the new value.
func (c *Counter) Increment() uint16 {
	return uint16(c.n.Add(1))
}

// Load returns the current value.
func (c *Counter) Load() uint16 {
	return uint16(c.n.Load())
}
