package musictheory

import (
	"errors"
	"fmt"
)

// ErrInvalidLetter is returned when a string does not name one of the seven
// note letters.
var ErrInvalidLetter = errors.New("invalid note letter")

// A Letter is one of the seven note letters C through B. Letters form a ring:
// adding or subtracting steps wraps around, so B plus one step is C again.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const numLetters = 7

// Semitone anchor of each letter, counted from C. Indexed by Letter.
var letterSemitones = [numLetters]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) isValid() bool {
	return l >= C && l <= B
}

// Add moves n letter steps up the ring, wrapping around as needed.
func (l Letter) Add(n int) Letter {
	return Letter(((int(l)+n)%numLetters + numLetters) % numLetters)
}

// Sub moves n letter steps down the ring, wrapping around as needed.
func (l Letter) Sub(n int) Letter {
	return l.Add(-n)
}

// Semitones returns how many semitones the letter is away from C.
func (l Letter) Semitones() int {
	return letterSemitones[l]
}

func (l Letter) String() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	default:
		return fmt.Sprintf("Letter(%d)", int(l))
	}
}

// ParseLetter converts a string to a Letter. Only the seven upper-case
// single-character names are accepted.
func ParseLetter(s string) (Letter, error) {
	switch s {
	case "C":
		return C, nil
	case "D":
		return D, nil
	case "E":
		return E, nil
	case "F":
		return F, nil
	case "G":
		return G, nil
	case "A":
		return A, nil
	case "B":
		return B, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
}
