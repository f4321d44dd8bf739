package probetarget

import (
	"context"
	"sync"
	"time"
)

// Snapshot is the JSON view of State.
type Snapshot struct {
	Ready bool   `json:"ready"`
	Alive bool   `json:"alive"`
	Pod   string `json:"pod"`
	// Countdown is omitted once it reached zero.
	Countdown int `json:"countdown,omitempty"`
}

// State is the liveness and readiness of the service.
//
// It is safe for concurrent use.
type State struct {
	pod string

	mu        sync.RWMutex
	alive     bool
	countdown int
}

// NewState returns an alive State that becomes ready after countdown ticks.
func NewState(countdown int, pod string) *State {
	if countdown < 0 {
		countdown = 0
	}
	return &State{
		pod:       pod,
		alive:     true,
		countdown: countdown,
	}
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Ready:     s.countdown <= 0,
		Alive:     s.alive,
		Pod:       s.pod,
		Countdown: s.countdown,
	}
}

// SetAlive sets whether the service is alive and returns the new state.
func (s *State) SetAlive(alive bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = alive
	return s.snapshotLocked()
}

// Tick decrements the countdown unless it is already zero,
// and returns what remains.
func (s *State) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countdown > 0 {
		s.countdown--
	}
	return s.countdown
}

// RunCountdown calls Tick every interval until the countdown reaches zero
// or ctx is done.
func (s *State) RunCountdown(ctx context.Context, interval time.Duration) {
	if s.Snapshot().Ready {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.Tick() <= 0 {
				return
			}
		}
	}
}
