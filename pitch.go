package musictheory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrInvalidOctave is returned when a string does not hold a usable
	// octave digit.
	ErrInvalidOctave = errors.New("invalid octave")

	// ErrNegativeOctave is returned when constructing a pitch with an octave
	// below zero. It wraps ErrInvalidOctave.
	ErrNegativeOctave = fmt.Errorf("%w: octave cannot be negative", ErrInvalidOctave)

	// ErrDoubleAccidental is returned by Add for roots spelled with a double
	// accidental; spelling those results correctly would need triple
	// accidentals, which the model does not have.
	ErrDoubleAccidental = errors.New("cannot add intervals to pitches with double accidentals")

	// ErrNoSpelling and ErrAmbiguousSpelling report a broken internal
	// invariant of interval addition. They never indicate bad input: for the
	// fixed interval table and single-accidental roots exactly one
	// letter-consistent spelling always exists, so seeing either means the
	// enumeration filter is defective.
	ErrNoSpelling        = errors.New("no letter-consistent spelling found")
	ErrAmbiguousSpelling = errors.New("multiple letter-consistent spellings found")
)

// A Pitch is a pitch class anchored in a concrete octave, like C4 or B♯0.
// The zero octave is the lowest; negative octaves do not exist, which is
// enforced by NewPitch.
//
// The == operator compares spellings structurally. Enharmonic equivalence
// (C4 sounding the same as B♯3) is the Equal/Compare relation instead, which
// looks only at the absolute semitone offset.
type Pitch struct {
	class  PitchClass
	octave int
}

// NewPitch combines a pitch class and an octave. Out-of-range letters or
// accidentals fail with ErrInvalidPitchClass, octaves below zero with
// ErrNegativeOctave.
func NewPitch(class PitchClass, octave int) (Pitch, error) {
	if !class.Letter.isValid() || !class.Accidental.isValid() {
		return Pitch{}, fmt.Errorf("%w: %v", ErrInvalidPitchClass, class)
	}
	if octave < 0 {
		return Pitch{}, fmt.Errorf("%w: got %d", ErrNegativeOctave, octave)
	}
	return Pitch{class: class, octave: octave}, nil
}

// Class returns the pitch class of the pitch.
func (p Pitch) Class() PitchClass {
	return p.class
}

// Octave returns the octave number of the pitch.
func (p Pitch) Octave() int {
	return p.octave
}

// AbsoluteSemitones returns the number of semitones away from C0, computed
// from the unreduced pitch class offset. The value can dip below zero: C♭0
// sits at -1 even though its octave is 0.
func (p Pitch) AbsoluteSemitones() int {
	return 12*p.octave + p.class.Semitones()
}

// Equal reports whether both pitches share the same absolute semitone offset.
// This is enharmonic equivalence, not spelling identity: C♭4 equals B3.
func (p Pitch) Equal(other Pitch) bool {
	return p.AbsoluteSemitones() == other.AbsoluteSemitones()
}

// Compare orders two pitches by absolute semitone offset, returning -1, 0 or
// +1. Enharmonically equal spellings compare as 0.
func (p Pitch) Compare(other Pitch) int {
	a, b := p.AbsoluteSemitones(), other.AbsoluteSemitones()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// floorDiv divides a by b rounding toward negative infinity. b must be
// positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a modulo b with the sign of b. b must be positive, so the
// result is always in [0, b).
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

/*
PitchesAt returns every pitch sitting exactly at the given absolute semitone
offset from C0.

Because pitch class offsets are unreduced, spellings near an octave boundary
belong arithmetically to a neighbouring octave. With X as an octave number:

  - "CX" can also be spelled B♯ in octave X-1
  - "C♯X" can also be spelled B𝄪 in octave X-1
  - "BX" can also be spelled C♭ in octave X+1
  - "B♭X" can also be spelled C𝄫 in octave X+1

So for target mod 12 in {0, 1, 10, 11} two in-octave offsets and two octaves
must be tried; everywhere else a single offset and octave suffice. Division
and modulo are floored (toward negative infinity) so that slightly negative
targets resolve correctly.

Every combination of a spelling from SpellingsAt and a candidate octave is
then recomputed and kept only when it reproduces the target exactly and its
octave is non-negative. The recompute filter is what guarantees correctness;
the candidate sets above just bound the search.

	PitchesAt(12) -> C1, B♯0, D𝄫1
	PitchesAt(11) -> C♭1, B0, A𝄪0
	PitchesAt(0)  -> C0, D𝄫0 (B♯ would need octave -1, which does not exist)
*/
func PitchesAt(target int) []Pitch {
	q := floorDiv(target, 12)

	var offsets []int
	var octaves []int
	switch floorMod(target, 12) {
	case 0:
		offsets = []int{0, 12}
		octaves = []int{q, q - 1}
	case 1:
		offsets = []int{1, 13}
		octaves = []int{q, q - 1}
	case 10:
		offsets = []int{10, -2}
		octaves = []int{q, q + 1}
	case 11:
		offsets = []int{11, -1}
		octaves = []int{q, q + 1}
	default:
		offsets = []int{floorMod(target, 12)}
		octaves = []int{q}
	}

	var out []Pitch
	for _, offset := range offsets {
		for _, class := range SpellingsAt(offset) {
			for _, octave := range octaves {
				if octave < 0 {
					continue
				}
				if 12*octave+class.Semitones() != target {
					continue
				}
				out = append(out, Pitch{class: class, octave: octave})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return structuralLess(out[i].class, out[j].class)
	})
	return out
}

// Transpositions returns every pitch a given semitone distance away from p.
// The distance may be negative; spellings that would land below octave 0 are
// dropped.
func (p Pitch) Transpositions(semitones int) []Pitch {
	return PitchesAt(p.AbsoluteSemitones() + semitones)
}

// Add moves the pitch up by an interval, choosing the one spelling whose
// letter sits exactly the interval's letter distance above the root. The
// octave changes when the interval crosses a boundary, and can also stay put
// where the spelling spills over instead: E♯4 plus a perfect fifth is B♯4.
//
// Roots with double accidentals are rejected with ErrDoubleAccidental.
func (p Pitch) Add(iv Interval) (Pitch, error) {
	switch p.class.Accidental {
	case DoubleSharp, DoubleFlat:
		return Pitch{}, fmt.Errorf("%w: %v + %v", ErrDoubleAccidental, p, iv)
	}

	candidates := p.Transpositions(iv.Semitones())

	var matches []Pitch
	for _, c := range candidates {
		if c.class.Letter.Sub(iv.LetterSteps()) == p.class.Letter {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		spew.Dump(candidates)
		return Pitch{}, fmt.Errorf("%w: %v + %v", ErrNoSpelling, p, iv)
	default:
		spew.Dump(matches)
		return Pitch{}, fmt.Errorf("%w: %v + %v", ErrAmbiguousSpelling, p, iv)
	}
}

// ParsePitch converts strings like "C4", "D♯5" or "Bb3" to a Pitch. The last
// character must be a decimal digit, so the textual form covers octaves 0
// through 9; the rest is parsed as a pitch class.
func ParsePitch(s string) (Pitch, error) {
	if len(s) == 0 {
		return Pitch{}, fmt.Errorf("%w: empty string", ErrInvalidOctave)
	}

	last := s[len(s)-1]
	if last < '0' || last > '9' {
		return Pitch{}, fmt.Errorf("%w: %q does not end in an octave digit", ErrInvalidOctave, s)
	}
	octave := int(last - '0')

	class, err := ParsePitchClass(s[:len(s)-1])
	if err != nil {
		return Pitch{}, err
	}

	return NewPitch(class, octave)
}

// String renders the pitch class followed by the decimal octave, like "C4"
// or "E♭2".
func (p Pitch) String() string {
	return p.class.String() + strconv.Itoa(p.octave)
}
