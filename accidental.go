package musictheory

import (
	"errors"
	"fmt"
)

// ErrInvalidAccidental is returned when a string does not name an accidental.
var ErrInvalidAccidental = errors.New("invalid accidental")

// An Accidental modifies a letter by a whole number of semitones, from
// double flat (-2) to double sharp (+2).
type Accidental int

const (
	DoubleFlat Accidental = iota - 2
	Flat
	Natural
	Sharp
	DoubleSharp
)

func (a Accidental) isValid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

// Semitones returns how many semitones the accidental modifies a letter by.
func (a Accidental) Semitones() int {
	return int(a)
}

// String returns the canonical unicode glyph for the accidental.
func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Natural:
		return "♮"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	default:
		return fmt.Sprintf("Accidental(%d)", int(a))
	}
}

// ASCII returns the plain-text alias for the accidental. The natural alias is
// "n", which only appears when an accidental is written standalone; combined
// pitch class text simply omits a natural.
func (a Accidental) ASCII() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return "n"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	default:
		return fmt.Sprintf("Accidental(%d)", int(a))
	}
}

// ParseAccidental converts a string to an Accidental. Both the unicode glyphs
// and the ASCII aliases are accepted, matched exactly and case-sensitively.
// The empty string is rejected: a standalone natural must be written "n" or
// "♮".
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "♯", "#":
		return Sharp, nil
	case "♭", "b":
		return Flat, nil
	case "♮", "n":
		return Natural, nil
	case "𝄪", "##":
		return DoubleSharp, nil
	case "𝄫", "bb":
		return DoubleFlat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccidental, s)
	}
}
