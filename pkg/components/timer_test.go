package components

import (
	"math"
	"testing"
	"time"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return baseTime.Add(time.Duration(ms) * time.Millisecond)
}

func TestAnimationTimerAbsent(t *testing.T) {
	var timer AnimationTimer

	p, done := timer.Advance(at(1000), 300*time.Millisecond)
	if p != 0 || done {
		t.Errorf("absent timer: progress=%v done=%v, want 0,false", p, done)
	}
	if timer.Running() {
		t.Error("zero timer must be absent")
	}
}

func TestAnimationTimerProgress(t *testing.T) {
	const d = 300 * time.Millisecond

	tests := []struct {
		name      string
		sampleMs  int
		wantP     float64
		wantDone  bool
		wantAlive bool
	}{
		{"at start", 0, 0, false, true},
		{"one third", 100, 1.0 / 3.0, false, true},
		{"almost", 299, 299.0 / 300.0, false, true},
		{"exactly at duration", 300, 1, true, false},
		{"past duration", 450, 1, true, false},
		{"before start", -50, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var timer AnimationTimer
			timer.Start(at(0))

			p, done := timer.Advance(at(tt.sampleMs), d)
			if math.Abs(p-tt.wantP) > 1e-9 {
				t.Errorf("progress = %v, want %v", p, tt.wantP)
			}
			if done != tt.wantDone {
				t.Errorf("justCompleted = %v, want %v", done, tt.wantDone)
			}
			if timer.Running() != tt.wantAlive {
				t.Errorf("Running() = %v, want %v", timer.Running(), tt.wantAlive)
			}
		})
	}
}

func TestAnimationTimerCompletesOnce(t *testing.T) {
	var timer AnimationTimer
	timer.Start(at(0))

	if _, done := timer.Advance(at(300), 300*time.Millisecond); !done {
		t.Fatal("expected completion at elapsed == duration")
	}
	p, done := timer.Advance(at(400), 300*time.Millisecond)
	if done {
		t.Error("justCompleted reported twice")
	}
	if p != 0 {
		t.Errorf("progress after completion = %v, want 0 (absent)", p)
	}
}

func TestAnimationTimerNonPositiveDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		var timer AnimationTimer
		timer.Start(at(0))

		p, done := timer.Advance(at(0), d)
		if p != 1 || !done {
			t.Errorf("duration %v: progress=%v done=%v, want 1,true", d, p, done)
		}
		if timer.Running() {
			t.Errorf("duration %v: timer should be cleared", d)
		}
	}
}

func TestAnimationTimerMonotonic(t *testing.T) {
	var timer AnimationTimer
	timer.Start(at(0))

	last := -1.0
	for ms := 0; ms <= 500; ms += 7 {
		if !timer.Running() {
			break
		}
		p, _ := timer.Advance(at(ms), 500*time.Millisecond)
		if p < last {
			t.Fatalf("progress decreased at %dms: %v < %v", ms, p, last)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0,1] at %dms", p, ms)
		}
		last = p
	}
}

func TestAnimationTimerRestartDiscardsProgress(t *testing.T) {
	var timer AnimationTimer
	timer.Start(at(0))
	timer.Advance(at(250), 300*time.Millisecond)

	timer.Start(at(250))
	p, done := timer.Advance(at(250), 300*time.Millisecond)
	if p != 0 || done {
		t.Errorf("after restart progress=%v done=%v, want 0,false", p, done)
	}

	start, ok := timer.StartedAt()
	if !ok || !start.Equal(at(250)) {
		t.Errorf("StartedAt() = %v,%v, want %v,true", start, ok, at(250))
	}

	timer.Clear()
	if _, ok := timer.StartedAt(); ok {
		t.Error("StartedAt() reports present after Clear")
	}
}
