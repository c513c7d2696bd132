package musictheory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidChord is returned when a string cannot be read as a chord.
var ErrInvalidChord = errors.New("invalid chord")

// A Chord is a set of pitches. Membership follows enharmonic equivalence:
// adding both C4 and B♯3 keeps only whichever arrived first, since they share
// an absolute semitone offset.
type Chord struct {
	notes map[int]Pitch
}

// NewChord builds a chord from the given pitches. Pitches whose absolute
// semitone offset is already present are dropped.
func NewChord(pitches ...Pitch) Chord {
	c := Chord{notes: make(map[int]Pitch, len(pitches))}
	for _, p := range pitches {
		key := p.AbsoluteSemitones()
		if _, ok := c.notes[key]; !ok {
			c.notes[key] = p
		}
	}
	return c
}

// Len returns the number of distinct pitches in the chord.
func (c Chord) Len() int {
	return len(c.notes)
}

// Contains reports whether the chord holds a pitch enharmonically equal to p.
func (c Chord) Contains(p Pitch) bool {
	_, ok := c.notes[p.AbsoluteSemitones()]
	return ok
}

// Pitches returns the chord's pitches in ascending order of absolute
// semitone offset. Spellings at the same offset collapse on insertion, so
// the fallback structural comparison only matters as a formal tie-break.
func (c Chord) Pitches() []Pitch {
	out := make([]Pitch, 0, len(c.notes))
	for _, p := range c.notes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if d := out[i].Compare(out[j]); d != 0 {
			return d < 0
		}
		return structuralLess(out[i].class, out[j].class)
	})
	return out
}

// String renders the chord as pitches between braces, ascending by absolute
// semitone offset regardless of insertion order: "{C4,E4,G4}".
func (c Chord) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, p := range c.Pitches() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(p.String())
	}
	b.WriteString("}")
	return b.String()
}

// ParseChord converts strings like "{C4,E4,G4}" to a Chord. "{}" is the
// empty chord.
func ParseChord(s string) (Chord, error) {
	inner, ok := strings.CutPrefix(s, "{")
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q is not wrapped in braces", ErrInvalidChord, s)
	}
	inner, ok = strings.CutSuffix(inner, "}")
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q is not wrapped in braces", ErrInvalidChord, s)
	}

	if inner == "" {
		return NewChord(), nil
	}

	var pitches []Pitch
	for _, tok := range strings.Split(inner, ",") {
		p, err := ParsePitch(tok)
		if err != nil {
			return Chord{}, fmt.Errorf("%w: %w", ErrInvalidChord, err)
		}
		pitches = append(pitches, p)
	}
	return NewChord(pitches...), nil
}
