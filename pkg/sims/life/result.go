package life

import (
	"fmt"
	"io"
)

// Kind classifies the cycle a run ended in.
type Kind int

const (
	// Static is a fixed point: one transition maps the state to itself.
	Static Kind = iota
	// Alternating flips between exactly two states.
	Alternating
	// Periodic cycles through three or more states.
	Periodic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Alternating:
		return "alternating"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result summarises a run that reached a previously seen state.
type Result struct {
	// FinalBoard is the board after the terminating transition.
	FinalBoard Board
	// FinalCount is the iteration at which the repeat was detected.
	FinalCount int
	// RepeatingKey is the iteration at which the repeated state was first recorded.
	RepeatingKey int
}

// PatternLength is FinalCount - RepeatingKey.
func (r Result) PatternLength() int {
	return r.FinalCount - r.RepeatingKey
}

// Period is the number of distinct states in the detected cycle.
func (r Result) Period() int {
	return r.PatternLength() + 1
}

// Kind classifies the result by its pattern length.
func (r Result) Kind() Kind {
	switch n := r.PatternLength(); {
	case n <= 0:
		return Static
	case n == 1:
		return Alternating
	default:
		return Periodic
	}
}

// Summary describes the detected cycle in one line.
func (r Result) Summary() string {
	switch r.Kind() {
	case Static:
		return fmt.Sprintf("Static pattern reached, first seen at iteration %d.", r.RepeatingKey)
	case Alternating:
		return fmt.Sprintf("Alternating pattern reached, first seen at iteration %d.", r.RepeatingKey)
	default:
		return fmt.Sprintf("Periodic pattern with period %d between iterations %d and %d.",
			r.Period(), r.RepeatingKey, r.FinalCount)
	}
}

// Draw writes the summary line followed by the final board.
func (r Result) Draw(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.Summary()); err != nil {
		return err
	}
	return r.FinalBoard.Draw(w)
}
