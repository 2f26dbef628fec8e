package layout

import (
	"math"
	"time"

	"github.com/SvenDH/hearthchess/tween"
)

type MulliganPhase int8

const (
	PhaseFlipDown MulliganPhase = iota
	PhaseFlipUp
	PhaseHold
	PhaseFly
	PhaseDone
)

func (p MulliganPhase) String() string {
	switch p {
	case PhaseFlipDown:
		return "flip-down"
	case PhaseFlipUp:
		return "flip-up"
	case PhaseHold:
		return "hold"
	case PhaseFly:
		return "fly"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// CardFrame is where one opening card is drawn in a frame. Replaced is
// true when the new hand card is shown instead of the pre-mulligan one.
type CardFrame struct {
	Rect     Rect
	Replaced bool
}

type MulliganFrame struct {
	Phase      MulliganPhase
	BoardAlpha float64
	Cards      []CardFrame
}

// MulliganFrameAt lays out the transition from the mulligan screen into
// the hand. The total duration is split into four equal steps. marked[i]
// is true for cards sent back; handLen is the size of the hand the cards
// fly into.
func MulliganFrameAt(elapsed, total time.Duration, marked []bool, handLen int) MulliganFrame {
	stepDuration := total / 4
	f := MulliganFrame{
		BoardAlpha: tween.Clamp(tween.Progress(elapsed, total), 0.5, 1),
		Cards:      make([]CardFrame, len(marked)),
	}
	switch {
	case elapsed >= total:
		f.Phase = PhaseDone
	case elapsed >= 3*stepDuration:
		f.Phase = PhaseFly
	case elapsed >= 2*stepDuration:
		f.Phase = PhaseHold
	case elapsed >= stepDuration:
		f.Phase = PhaseFlipUp
	default:
		f.Phase = PhaseFlipDown
	}

	spacing := float64(HandSpacing(handLen))
	for i, m := range marked {
		r := MulliganCard(i)
		c := CardFrame{Replaced: f.Phase != PhaseFlipDown}
		switch f.Phase {
		case PhaseFlipDown:
			if m {
				w := CardWidth * math.Max(1-tween.Progress(elapsed, stepDuration), 0)
				r.X += (CardWidth - w) / 2
				r.W = w
			}
		case PhaseFlipUp:
			if m {
				w := CardWidth * tween.Progress(elapsed-stepDuration, stepDuration)
				r.X += (CardWidth - w) / 2
				r.W = w
			}
		case PhaseFly, PhaseDone:
			s := tween.Progress(elapsed-3*stepDuration, stepDuration)
			r.X = tween.Lerp(r.X, 400+spacing*float64(i), s)
			r.Y = tween.Lerp(r.Y, 930, s)
		}
		c.Rect = r
		f.Cards[i] = c
	}
	return f
}

// FadeIn is the alpha of something that started appearing elapsed ago
// and takes dur to become opaque.
func FadeIn(elapsed, dur time.Duration) float64 {
	return tween.Progress(elapsed, dur)
}
