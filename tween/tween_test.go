package tween

import (
	"math"
	"testing"
	"time"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestTweenLinear(t *testing.T) {
	tw := New(0, 10, 1, Linear)
	v, done := tw.Update(0.25)
	if done || !near(v, 2.5) {
		t.Fatalf("expected 2.5 not done, got %v %v", v, done)
	}
	v, done = tw.Update(1)
	if !done || v != 10 {
		t.Fatalf("expected 10 done, got %v %v", v, done)
	}
}

func TestEasings(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"inquad":    InQuad,
		"outquad":   OutQuad,
		"inoutquad": InOutQuad,
	} {
		if !near(e(0), 0) || !near(e(1), 1) {
			t.Fatalf("%s does not map endpoints: %v %v", name, e(0), e(1))
		}
	}
	if !(OutQuad(0.5) > 0.5) || !(InQuad(0.5) < 0.5) {
		t.Fatalf("quad easings have the wrong curvature")
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(New(0, 8, 0.1, OutQuad), New(8, 0, 0.1, InQuad))
	v, idx, done := s.Update(0.1)
	if idx != 0 || done || v != 8 {
		t.Fatalf("first leg: %v %d %v", v, idx, done)
	}
	v, idx, done = s.Update(0.1)
	if idx != 1 || !done || v != 0 {
		t.Fatalf("second leg: %v %d %v", v, idx, done)
	}
	v, _, done = s.Update(0.1)
	if !done || v != 0 {
		t.Fatalf("finished sequence should hold the last value, got %v", v)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed, total time.Duration
		want           float64
	}{
		{0, time.Second, 0},
		{250 * time.Millisecond, time.Second, 0.25},
		{2 * time.Second, time.Second, 1},
		{-time.Second, time.Second, 0},
		{time.Second, 0, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.elapsed, tt.total); got != tt.want {
			t.Fatalf("Progress(%v, %v) = %v, want %v", tt.elapsed, tt.total, got, tt.want)
		}
	}
}
