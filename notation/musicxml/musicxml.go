// Package musicxml renders chords as MusicXML score-partwise documents,
// which notation programs such as MuseScore can open and engrave.
package musicxml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	musictheory "github.com/valterschutz/gomusictheory"
)

// ErrInvalidTone is returned when a tone cannot be written as MusicXML.
var ErrInvalidTone = errors.New("invalid tone")

// A Tone is one note of a chord in MusicXML terms: a step letter, an
// alteration in semitones away from the natural step, and an octave.
type Tone struct {
	Step   string // "A" through "G"
	Alter  int    // -2 through 2
	Octave int    // 0 through 9
}

func (t Tone) validate() error {
	switch t.Step {
	case "A", "B", "C", "D", "E", "F", "G":
	default:
		return fmt.Errorf("%w: step %q", ErrInvalidTone, t.Step)
	}
	if t.Alter < -2 || t.Alter > 2 {
		return fmt.Errorf("%w: alter %d out of range", ErrInvalidTone, t.Alter)
	}
	if t.Octave < 0 || t.Octave > 9 {
		return fmt.Errorf("%w: octave %d out of range", ErrInvalidTone, t.Octave)
	}
	return nil
}

// ToneFor converts a pitch to its MusicXML tone. The spelling is preserved:
// E♭4 becomes step E, alter -1, octave 4 rather than step D, alter 1.
func ToneFor(p musictheory.Pitch) Tone {
	class := p.Class()
	return Tone{
		Step:   class.Letter.String(),
		Alter:  class.Accidental.Semitones(),
		Octave: p.Octave(),
	}
}

// Tones converts every pitch of the chord, in ascending order.
func Tones(chord musictheory.Chord) []Tone {
	pitches := chord.Pitches()
	tones := make([]Tone, len(pitches))
	for i, p := range pitches {
		tones[i] = ToneFor(p)
	}
	return tones
}

// xmlWriter emits indented XML elements. The first write error is kept and
// every later call becomes a no-op, so callers check the error once after
// the last element.
type xmlWriter struct {
	w     io.Writer
	level int
	err   error
}

func (wr *xmlWriter) fmt(format string, args ...any) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.w, "%s%s\n", strings.Repeat("  ", wr.level), fmt.Sprintf(format, args...))
}

// tag opens an element and returns the function that closes it.
func (wr *xmlWriter) tag(name string, attrs ...any) func() {
	tag := name
	for i := 0; i+1 < len(attrs); i += 2 {
		tag = fmt.Sprintf("%s %v=\"%v\"", tag, attrs[i], attrs[i+1])
	}
	wr.fmt("<%s>", tag)
	wr.level++
	return func() {
		wr.level--
		wr.fmt("</%s>", name)
	}
}

func (wr *xmlWriter) contentTag(name string, content any) {
	wr.fmt("<%s>%v</%s>", name, content, name)
}

func (wr *xmlWriter) emptyTag(name string) {
	wr.fmt("<%s/>", name)
}

const (
	xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`
	doctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`
)

// WriteChordScore writes a single-measure score-partwise document holding the
// tones as one chord of whole notes. The <chord/> marker goes on every note
// after the first, which makes them sound together with it.
func WriteChordScore(w io.Writer, tones ...Tone) error {
	for _, t := range tones {
		if err := t.validate(); err != nil {
			return err
		}
	}

	wr := &xmlWriter{w: w}
	wr.fmt("%s", xmlDecl)
	wr.fmt("%s", doctype)

	closeScore := wr.tag("score-partwise", "version", "3.1")

	closeList := wr.tag("part-list")
	closeScorePart := wr.tag("score-part", "id", "P1")
	wr.contentTag("part-name", "Music")
	closeScorePart()
	closeList()

	closePart := wr.tag("part", "id", "P1")
	closeMeasure := wr.tag("measure", "number", 1)

	closeAttrs := wr.tag("attributes")
	wr.contentTag("divisions", 1)
	closeKey := wr.tag("key")
	wr.contentTag("fifths", 0)
	closeKey()
	closeClef := wr.tag("clef")
	wr.contentTag("sign", "G")
	wr.contentTag("line", 2)
	closeClef()
	closeAttrs()

	for i, t := range tones {
		closeNote := wr.tag("note")
		if i > 0 {
			wr.emptyTag("chord")
		}
		closePitch := wr.tag("pitch")
		wr.contentTag("step", t.Step)
		wr.contentTag("alter", t.Alter)
		wr.contentTag("octave", t.Octave)
		closePitch()
		wr.contentTag("duration", 4)
		wr.contentTag("type", "whole")
		closeNote()
	}

	closeMeasure()
	closePart()
	closeScore()

	// Sanity check to make sure every opened tag was closed.
	if wr.err == nil && wr.level != 0 {
		return fmt.Errorf("unbalanced document: %d tags left open", wr.level)
	}
	return wr.err
}

// ChordScore renders the chord as a complete MusicXML document.
func ChordScore(chord musictheory.Chord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteChordScore(&buf, Tones(chord)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
