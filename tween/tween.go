package tween

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float32) float32

func Linear(t float32) float32 { return t }

func InQuad(t float32) float32 { return t * t }

func OutQuad(t float32) float32 { return t * (2 - t) }

func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Tween interpolates from begin to end over duration seconds.
type Tween struct {
	begin, end float32
	duration   float32
	elapsed    float32
	easing     Easing
}

func New(begin, end, duration float32, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{
		begin:    begin,
		end:      end,
		duration: duration,
		easing:   easing,
	}
}

// Update advances the tween by dt seconds and returns the current value
// and whether the tween has finished.
func (t *Tween) Update(dt float32) (float32, bool) {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		return t.end, true
	}
	return t.Value(), false
}

func (t *Tween) Value() float32 {
	if t.duration <= 0 {
		return t.end
	}
	p := t.easing(t.elapsed / t.duration)
	return t.begin + (t.end-t.begin)*p
}

func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Sequence runs tweens one after another.
type Sequence struct {
	tweens []*Tween
	index  int
}

func NewSequence(tweens ...*Tween) *Sequence {
	return &Sequence{tweens: tweens}
}

// Update advances the active tween. It returns the current value, the
// index of the active tween and whether the whole sequence is complete.
func (s *Sequence) Update(dt float32) (float32, int, bool) {
	if len(s.tweens) == 0 {
		return 0, 0, true
	}
	if s.index >= len(s.tweens) {
		last := s.tweens[len(s.tweens)-1]
		return last.end, len(s.tweens) - 1, true
	}
	v, done := s.tweens[s.index].Update(dt)
	idx := s.index
	if done {
		s.index++
	}
	return v, idx, s.index >= len(s.tweens)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress is elapsed/total clamped to [0, 1].
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(float64(elapsed)/float64(total), 0, 1)
}
