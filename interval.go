package musictheory

import "fmt"

// An Interval is a named musical interval. Each interval carries two
// distances: a semitone distance and a letter distance, and together they
// pin down the one correct spelling when the interval is added to a pitch.
type Interval int

const (
	PerfectUnison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	PerfectOctave
)

var intervalTable = [...]struct {
	name      string
	semitones int
	letters   int
}{
	PerfectUnison: {"perfect unison", 0, 0},
	MinorSecond:   {"minor second", 1, 1},
	MajorSecond:   {"major second", 2, 1},
	MinorThird:    {"minor third", 3, 2},
	MajorThird:    {"major third", 4, 2},
	PerfectFourth: {"perfect fourth", 5, 3},
	PerfectFifth:  {"perfect fifth", 7, 4},
	MinorSixth:    {"minor sixth", 8, 5},
	MajorSixth:    {"major sixth", 9, 5},
	MinorSeventh:  {"minor seventh", 10, 6},
	MajorSeventh:  {"major seventh", 11, 6},
	PerfectOctave: {"perfect octave", 12, 7},
}

func (iv Interval) isValid() bool {
	return iv >= PerfectUnison && iv <= PerfectOctave
}

// Semitones returns the semitone distance of the interval.
func (iv Interval) Semitones() int {
	return intervalTable[iv].semitones
}

// LetterSteps returns the letter distance of the interval: how many steps up
// the letter ring the upper pitch sits from the lower one.
func (iv Interval) LetterSteps() int {
	return intervalTable[iv].letters
}

func (iv Interval) String() string {
	if !iv.isValid() {
		return fmt.Sprintf("Interval(%d)", int(iv))
	}
	return intervalTable[iv].name
}
