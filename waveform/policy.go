package waveform

import "fmt"

// Policy selects how a waveform is evaluated between its knots.
type Policy int

const (
	// Latest returns the most recent knot in time (zero-order hold). It is
	// causal: it never looks ahead of the requested time.
	Latest Policy = iota

	// Nearest returns the knot closest in absolute time. Ties resolve to
	// the earlier knot.
	Nearest

	// Linear blends the bracketing knots per component.
	Linear
)

func (p Policy) String() string {
	switch p {
	case Latest:
		return "latest"
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	switch p {
	case Latest, Nearest, Linear:
		return true
	default:
		return false
	}
}

// ParsePolicy converts a policy name to a Policy. Unknown names return
// ErrPolicy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "latest":
		return Latest, nil
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	default:
		return Latest, fmt.Errorf("%w: %q", ErrPolicy, name)
	}
}
