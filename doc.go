// Package musictheory computes with musical pitches, both inside a
// specific octave and without one.
//
// Vocabulary used throughout the package:
//
//   - "semitone offset": the number of semitones away from C in the octave.
//   - "absolute semitone offset": the number of semitones away from C0.
//   - "semitone distance": a number of semitones between two pitches.
//
// Offsets are never reduced modulo 12. A spelling like B♯ sits at offset 12
// and C♭ at offset -1, and the octave-boundary logic in PitchesAt depends on
// those values staying signed and unreduced.
package musictheory
