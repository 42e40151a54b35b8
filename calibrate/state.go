// SPDX-License-Identifier: MIT

package calibrate

import "fmt"

// State is the search phase of a Calibrator.
type State int

const (
	// Probing: no candidate measured yet.
	Probing State = iota
	// Improving: the last recorded candidate beat every earlier one.
	Improving
	// Done: the search stopped; the recorded best is final.
	Done
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Probing:
		return "probing"
	case Improving:
		return "improving"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// MarshalText makes State readable in YAML reports.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses the names produced by String.
func (s *State) UnmarshalText(b []byte) error {
	for _, st := range []State{Probing, Improving, Done} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}

	return fmt.Errorf("calibrate: unknown state %q", b)
}
