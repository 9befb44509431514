package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFires(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired int32
	done := make(chan struct{})

	id := s.Schedule(10*time.Millisecond, func() {
		atomic.StoreInt32(&fired, 1)
		close(done)
	})

	if id == "" {
		t.Fatal("Schedule() returned an empty job id")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not fire")
	}

	if atomic.LoadInt32(&fired) != 1 {
		t.Error("job function did not run")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after firing, want 0", s.Pending())
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	id := s.Schedule(time.Hour, func() {
		t.Error("cancelled job should not fire")
	})

	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	if !s.Cancel(id) {
		t.Error("Cancel() should return true for a pending job")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel, want 0", s.Pending())
	}
	if s.Cancel(id) {
		t.Error("Cancel() should return false for an already cancelled job")
	}
}

func TestCancelUnknownID(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	if s.Cancel("not-a-job") {
		t.Error("Cancel() should return false for an unknown id")
	}
}

func TestStopCancelsEverything(t *testing.T) {
	s := NewScheduler()

	for i := 0; i < 3; i++ {
		s.Schedule(time.Hour, func() {})
	}
	if s.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", s.Pending())
	}

	s.Stop()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", s.Pending())
	}
}
