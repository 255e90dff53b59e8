package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

// TestPausableClockFreezesWhilePaused verifies game time stops during pause
func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(100 * time.Millisecond)
	before := clock.Now()

	clock.Pause()
	mock.Advance(5 * time.Second)

	if got := clock.Now(); !got.Equal(before) {
		t.Errorf("Game time advanced while paused: %v -> %v", before, got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration during pause = %v, want 5s", got)
	}

	clock.Resume()
	if got := clock.Now(); !got.Equal(before) {
		t.Errorf("Game time jumped on resume: %v -> %v", before, got)
	}

	mock.Advance(50 * time.Millisecond)
	if got := clock.Now().Sub(before); got != 50*time.Millisecond {
		t.Errorf("Game time after resume advanced %v, want 50ms", got)
	}
}

// TestPausableClockIdempotent verifies repeated Pause/Resume calls do not skew time
func TestPausableClockIdempotent(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	clock.Resume()
	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if clock.IsPaused() {
		t.Error("Clock should be running")
	}
	if got := clock.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 2s", got)
	}
	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now = %v, want %v", got, start)
	}
}
