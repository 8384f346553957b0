package exam

import (
	"testing"
	"time"
)

func TestCountdown_DeliversAndStops(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Start()

	select {
	case _, ok := <-cd.C():
		if !ok {
			t.Fatal("channel closed before Stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no tick delivered")
	}

	cd.Stop()

	// After Stop the channel drains and closes.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-cd.C():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel never closed after Stop")
		}
	}
}

func TestCountdown_StopIdempotent(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Start()
	cd.Stop()
	cd.Stop() // must not panic
}

func TestCountdown_StopBeforeStart(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Stop()
	cd.Start() // must not revive the pulse

	select {
	case _, ok := <-cd.C():
		if ok {
			t.Fatal("stopped countdown delivered a tick")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed for stopped countdown")
	}
}
