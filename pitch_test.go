package musictheory

import (
	"errors"
	"testing"
)

func mustPitch(t *testing.T, s string) Pitch {
	t.Helper()
	p, err := ParsePitch(s)
	if err != nil {
		t.Fatalf("ParsePitch(%q) error: %v", s, err)
	}
	return p
}

// pitchesMustMatch checks that got holds exactly the pitches named by want,
// spelling for spelling, in any order.
func pitchesMustMatch(t *testing.T, got []Pitch, want ...string) {
	t.Helper()
	wantSet := make(map[Pitch]bool, len(want))
	for _, s := range want {
		wantSet[mustPitch(t, s)] = true
	}
	for _, p := range got {
		if !wantSet[p] {
			t.Errorf("unexpected pitch %v", p)
		}
		delete(wantSet, p)
	}
	for p := range wantSet {
		t.Errorf("missing pitch %v", p)
	}
}

func TestNewPitchNegativeOctave(t *testing.T) {
	_, err := NewPitch(PitchClass{C, Natural}, -1)
	if !errors.Is(err, ErrNegativeOctave) {
		t.Errorf("NewPitch octave -1 = %v; want ErrNegativeOctave", err)
	}
	if !errors.Is(err, ErrInvalidOctave) {
		t.Errorf("ErrNegativeOctave should wrap ErrInvalidOctave, got %v", err)
	}
}

func TestNewPitchInvalidClass(t *testing.T) {
	bad := []PitchClass{
		{Letter: Letter(7), Accidental: Natural},
		{Letter: Letter(-1), Accidental: Natural},
		{Letter: C, Accidental: Accidental(3)},
		{Letter: C, Accidental: Accidental(-3)},
	}
	for _, class := range bad {
		if _, err := NewPitch(class, 4); !errors.Is(err, ErrInvalidPitchClass) {
			t.Errorf("NewPitch(%+v, 4) = %v; want ErrInvalidPitchClass", class, err)
		}
	}
}

func TestAbsoluteSemitones(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"C0", 0},
		{"Cb0", -1},
		{"C1", 12},
		{"Cb2", 23},
		{"B#1", 24},
		{"G#2", 32},
		{"C4", 48},
	}

	for _, tc := range tests {
		if got := mustPitch(t, tc.in).AbsoluteSemitones(); got != tc.want {
			t.Errorf("AbsoluteSemitones(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

// Equality is enharmonic equivalence: same sounding pitch, any spelling.
func TestPitchEqual(t *testing.T) {
	equal := [][2]string{
		{"Cb4", "B3"},
		{"E#4", "F4"},
		{"G#4", "Ab4"},
		{"B#3", "C4"},
	}
	for _, pair := range equal {
		if !mustPitch(t, pair[0]).Equal(mustPitch(t, pair[1])) {
			t.Errorf("%s should equal %s", pair[0], pair[1])
		}
	}

	notEqual := [][2]string{
		{"C4", "Cb5"},
		{"C4", "C5"},
		{"C4", "D4"},
	}
	for _, pair := range notEqual {
		if mustPitch(t, pair[0]).Equal(mustPitch(t, pair[1])) {
			t.Errorf("%s should not equal %s", pair[0], pair[1])
		}
	}
}

func TestPitchCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"C4", "D4", -1},
		{"D4", "C4", 1},
		{"C4", "B#3", 0},
		{"Cb4", "B3", 0},
		{"B3", "C4", -1},
	}

	for _, tc := range tests {
		if got := mustPitch(t, tc.a).Compare(mustPitch(t, tc.b)); got != tc.want {
			t.Errorf("Compare(%s, %s) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPitchesAt(t *testing.T) {
	tests := []struct {
		target int
		want   []string
	}{
		{0, []string{"C0", "Dbb0"}},
		{1, []string{"C#0", "Db0"}},
		{10, []string{"Cbb1", "Bb0", "A#0"}},
		{11, []string{"Cb1", "B0", "A##0"}},
		{12, []string{"C1", "B#0", "Dbb1"}},
		{13, []string{"C#1", "B##0", "Db1"}},
		{24, []string{"C2", "B#1", "Dbb2"}},
		{28, []string{"E2", "Fb2", "D##2"}},
		{31, []string{"G2", "F##2", "Abb2"}},
		{32, []string{"G#2", "Ab2"}},
		{-1, []string{"Cb0"}},
		{-2, []string{"Cbb0"}},
		{-3, nil},
	}

	for _, tc := range tests {
		pitchesMustMatch(t, PitchesAt(tc.target), tc.want...)
	}
}

// The recompute filter must hold for every enumerated pitch.
func TestPitchesAtRecompute(t *testing.T) {
	for target := -3; target <= 130; target++ {
		for _, p := range PitchesAt(target) {
			if p.AbsoluteSemitones() != target {
				t.Errorf("PitchesAt(%d) returned %v at offset %d", target, p, p.AbsoluteSemitones())
			}
			if p.Octave() < 0 {
				t.Errorf("PitchesAt(%d) returned negative octave %v", target, p)
			}
		}
	}
}

func TestTranspositions(t *testing.T) {
	c4 := mustPitch(t, "C4")

	tests := []struct {
		semitones int
		want      []string
	}{
		{0, []string{"C4", "Dbb4", "B#3"}},
		{1, []string{"C#4", "Db4", "B##3"}},
		{3, []string{"D#4", "Eb4", "Fbb4"}},
		{-1, []string{"B3", "A##3", "Cb4"}},
		{12, []string{"C5", "Dbb5", "B#4"}},
	}

	for _, tc := range tests {
		pitchesMustMatch(t, c4.Transpositions(tc.semitones), tc.want...)
	}
}

func TestAddInterval(t *testing.T) {
	tests := []struct {
		root     string
		interval Interval
		want     string
	}{
		{"C4", MinorThird, "Eb4"},
		{"Fb4", MinorThird, "Abb4"},
		{"Cb4", MinorThird, "Ebb4"},
		{"B#4", MajorThird, "D##5"},
		{"A#4", MajorThird, "C##5"},
		{"B#4", PerfectFifth, "F##5"},
		{"E#4", PerfectFifth, "B#4"},
		{"G4", PerfectFifth, "D5"},
		{"C4", PerfectUnison, "C4"},
		{"E#4", PerfectUnison, "E#4"},
		{"C4", PerfectOctave, "C5"},
		{"Cb4", PerfectOctave, "Cb5"},
		{"B4", MinorSecond, "C5"},
		{"Cb0", MinorSecond, "Dbb0"},
	}

	for _, tc := range tests {
		got, err := mustPitch(t, tc.root).Add(tc.interval)
		if err != nil {
			t.Fatalf("%s.Add(%v) error: %v", tc.root, tc.interval, err)
		}
		if want := mustPitch(t, tc.want); got != want {
			t.Errorf("%s.Add(%v) = %v; want %v", tc.root, tc.interval, got, want)
		}
	}
}

func TestAddDoubleAccidental(t *testing.T) {
	for _, root := range []string{"B##4", "Abb4", "Cbb0"} {
		_, err := mustPitch(t, root).Add(MajorThird)
		if !errors.Is(err, ErrDoubleAccidental) {
			t.Errorf("%s.Add(MajorThird) = %v; want ErrDoubleAccidental", root, err)
		}
	}
}

// Exactly one letter-consistent spelling must exist for every interval in the
// table and every single-accidental root. A failure here means the
// enumeration filter is broken, not the test data.
func TestAddSpellingUnique(t *testing.T) {
	for l := C; l <= B; l++ {
		for _, a := range []Accidental{Flat, Natural, Sharp} {
			for _, octave := range []int{0, 4, 9} {
				root, err := NewPitch(PitchClass{Letter: l, Accidental: a}, octave)
				if err != nil {
					t.Fatalf("NewPitch(%v%v, %d) error: %v", l, a, octave, err)
				}
				for iv := PerfectUnison; iv <= PerfectOctave; iv++ {
					got, err := root.Add(iv)
					if err != nil {
						t.Errorf("%v.Add(%v) error: %v", root, iv, err)
						continue
					}
					if got.AbsoluteSemitones() != root.AbsoluteSemitones()+iv.Semitones() {
						t.Errorf("%v.Add(%v) = %v: wrong distance", root, iv, got)
					}
					if got.Class().Letter != root.Class().Letter.Add(iv.LetterSteps()) {
						t.Errorf("%v.Add(%v) = %v: wrong letter", root, iv, got)
					}
				}
			}
		}
	}
}

func TestParsePitchGlyphs(t *testing.T) {
	pairs := [][2]string{
		{"D♯5", "D#5"},
		{"B♭3", "Bb3"},
		{"E𝄫2", "Ebb2"},
		{"F𝄪1", "F##1"},
		{"G♮6", "Gn6"},
	}
	for _, pair := range pairs {
		if mustPitch(t, pair[0]) != mustPitch(t, pair[1]) {
			t.Errorf("%q and %q should parse to the same spelling", pair[0], pair[1])
		}
	}
}

func TestPitchStringRoundTrip(t *testing.T) {
	for l := C; l <= B; l++ {
		for a := DoubleFlat; a <= DoubleSharp; a++ {
			for _, octave := range []int{0, 5, 9} {
				p, err := NewPitch(PitchClass{Letter: l, Accidental: a}, octave)
				if err != nil {
					t.Fatalf("NewPitch error: %v", err)
				}
				s := p.String()
				got, err := ParsePitch(s)
				if err != nil {
					t.Fatalf("ParsePitch(%q) error: %v", s, err)
				}
				if got != p {
					t.Errorf("ParsePitch(%q) = %v; want %v", s, got, p)
				}
			}
		}
	}
}

func TestParsePitchFailures(t *testing.T) {
	tests := []struct {
		in       string
		sentinel error
	}{
		{"", ErrInvalidOctave},
		{"C", ErrInvalidOctave},
		{"Cbb", ErrInvalidOctave},
		{"C♯", ErrInvalidOctave},
		{"c4", ErrInvalidPitchClass},
		{"♭A5", ErrInvalidPitchClass},
		{"C-1", ErrInvalidPitchClass},
		// Octaves above 9 have no textual form; the digit before the final
		// one reads as a bogus accidental.
		{"C10", ErrInvalidPitchClass},
		{"4", ErrInvalidPitchClass},
	}

	for _, tc := range tests {
		if _, err := ParsePitch(tc.in); !errors.Is(err, tc.sentinel) {
			t.Errorf("ParsePitch(%q) = %v; want %v", tc.in, err, tc.sentinel)
		}
	}
}
