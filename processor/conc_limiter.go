package processor

import (
	"sync"
)

// ConcLimiter bounds how many rasters are warped and multilooked at
// once. Increase blocks once the limit is reached and Decrease releases
// a slot; Wait comes from the embedded WaitGroup.
type ConcLimiter struct {
	*sync.WaitGroup
	slots chan struct{}
}

// NewConcLimiter returns a limiter admitting up to cLevel concurrent
// rasters. Non-positive levels are treated as serial processing.
func NewConcLimiter(cLevel int) *ConcLimiter {
	if cLevel < 1 {
		cLevel = 1
	}
	var wg sync.WaitGroup
	return &ConcLimiter{&wg, make(chan struct{}, cLevel)}
}

func (c *ConcLimiter) Increase() {
	c.Add(1)
	c.slots <- struct{}{}
}

// Decrease is safe to call more times than Increase.
func (c *ConcLimiter) Decrease() {
	select {
	case <-c.slots:
		c.Done()
	default:
	}
}
