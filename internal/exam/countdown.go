package exam

import (
	"sync"
	"time"
)

// Countdown is the one-second pulse driving an in-progress session. It is an
// explicit resource: whoever starts it must stop it on any exit from the
// in-progress mode, so a timer belonging to an abandoned session can never
// fire into a later one. Stop is idempotent and closes C.
type Countdown struct {
	interval time.Duration

	c        chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// NewCountdown creates a countdown pulsing every interval. Zero means one
// second; tests shrink it.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		interval: interval,
		c:        make(chan time.Time),
		stopped:  make(chan struct{}),
	}
}

// C delivers one value per elapsed interval. The channel is closed by Stop.
func (cd *Countdown) C() <-chan time.Time {
	return cd.c
}

// Start launches the pulse. Calling Start twice, or after Stop, is a no-op.
func (cd *Countdown) Start() {
	cd.startMu.Lock()
	defer cd.startMu.Unlock()
	if cd.started {
		return
	}
	select {
	case <-cd.stopped:
		return
	default:
	}
	cd.started = true

	go func() {
		ticker := time.NewTicker(cd.interval)
		defer ticker.Stop()
		defer close(cd.c)
		for {
			select {
			case <-cd.stopped:
				return
			case t := <-ticker.C:
				select {
				case cd.c <- t:
				case <-cd.stopped:
					return
				}
			}
		}
	}()
}

// Stop tears the countdown down deterministically. Safe to call any number
// of times, from any goroutine, started or not.
func (cd *Countdown) Stop() {
	cd.stopOnce.Do(func() {
		close(cd.stopped)
		cd.startMu.Lock()
		if !cd.started {
			// Never started: close C ourselves so receivers unblock.
			close(cd.c)
		}
		cd.startMu.Unlock()
	})
}
