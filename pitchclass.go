package musictheory

import (
	"errors"
	"fmt"
)

// ErrInvalidPitchClass is returned when a string cannot be read as a pitch
// class. It wraps the underlying letter or accidental error.
var ErrInvalidPitchClass = errors.New("invalid pitch class")

// A PitchClass is an abstract pitch without an octave: a letter plus an
// accidental, like C, F♯ or B𝄫. Two pitch classes are equal only when both
// letter and accidental match, so == is spelling identity; enharmonically
// equal spellings such as C♯ and D♭ are distinct values.
type PitchClass struct {
	Letter     Letter
	Accidental Accidental
}

// Semitones returns how many semitones away from C the pitch class is: the
// letter anchor plus the accidental. The value is deliberately not reduced
// modulo 12:
//
//	C = 0, C♯ = 1, C𝄪 = 2, C♭ = -1, C𝄫 = -2, B♯ = 12, B𝄪 = 13
func (pc PitchClass) Semitones() int {
	return pc.Letter.Semitones() + pc.Accidental.Semitones()
}

// SpellingsAt returns every pitch class sitting exactly at the given semitone
// offset from C. All 35 letter/accidental combinations are tried and kept on
// an exact, unreduced match, so offset 12 yields only B♯ and offset -1 only
// C♭. Results are ordered by letter, then accidental.
//
//	0  -> C, D𝄫
//	1  -> C♯, D♭
//	7  -> G, F𝄪, A𝄫
//	11 -> B, A𝄪
//	12 -> B♯
func SpellingsAt(semitones int) []PitchClass {
	var out []PitchClass
	for l := C; l <= B; l++ {
		for a := DoubleFlat; a <= DoubleSharp; a++ {
			pc := PitchClass{Letter: l, Accidental: a}
			if pc.Semitones() == semitones {
				out = append(out, pc)
			}
		}
	}
	return out
}

// ParsePitchClass converts strings like "C", "C#", "D♭" or "Ebb" to a
// PitchClass. The first character is the letter; the rest is the accidental,
// with an empty rest meaning natural.
func ParsePitchClass(s string) (PitchClass, error) {
	if s == "" {
		return PitchClass{}, fmt.Errorf("%w: empty string", ErrInvalidPitchClass)
	}

	letter, err := ParseLetter(s[:1])
	if err != nil {
		return PitchClass{}, fmt.Errorf("%w %q: %w", ErrInvalidPitchClass, s, err)
	}

	accidental := Natural
	if rest := s[1:]; rest != "" {
		accidental, err = ParseAccidental(rest)
		if err != nil {
			return PitchClass{}, fmt.Errorf("%w %q: %w", ErrInvalidPitchClass, s, err)
		}
	}

	return PitchClass{Letter: letter, Accidental: accidental}, nil
}

// String renders the letter followed by the accidental glyph. A natural is
// omitted, so C natural prints as just "C".
func (pc PitchClass) String() string {
	if pc.Accidental == Natural {
		return pc.Letter.String()
	}
	return pc.Letter.String() + pc.Accidental.String()
}

// structuralLess orders pitch classes by letter, then accidental. This is the
// deterministic tie-break order used wherever enharmonically equal spellings
// need a stable ordering.
func structuralLess(a, b PitchClass) bool {
	if a.Letter != b.Letter {
		return a.Letter < b.Letter
	}
	return a.Accidental < b.Accidental
}
