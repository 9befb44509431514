// Package scheduler runs delayed one-shot jobs, used for timed
// moderation actions such as deferred unmutes. Jobs live in memory only
// and do not survive a restart.
package scheduler

import (
	"sync"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/errors"
	"github.com/google/uuid"
)

// Scheduler tracks pending one-shot jobs
type Scheduler struct {
	timers map[string]*time.Timer
	mu     sync.Mutex
}

var (
	scheduler *Scheduler
	once      sync.Once
)

// Init initializes the global scheduler instance
func Init() *Scheduler {
	once.Do(func() {
		scheduler = NewScheduler()
	})
	return scheduler
}

// Get returns the global scheduler instance
func Get() *Scheduler {
	once.Do(func() {
		scheduler = NewScheduler()
	})
	return scheduler
}

// NewScheduler creates a new Scheduler instance
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule runs fn after delay and returns the job id. The job fires in
// its own goroutine with panic recovery.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers[id] = time.AfterFunc(delay, func() {
		defer errors.RecoverMiddleware()()

		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()

		fn()
	})

	return id
}

// Cancel stops a pending job. Returns false if the job already fired or
// was never scheduled.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	return timer.Stop()
}

// Pending returns the number of jobs waiting to fire
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending job
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
