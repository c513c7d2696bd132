package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/sqweek/dialog"
	musictheory "github.com/valterschutz/gomusictheory"
	"github.com/valterschutz/gomusictheory/notation/musicxml"
	"github.com/valterschutz/gomusictheory/render"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "", log.Ldate|log.Ltime)

	// Get the current working directory.
	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatalf("failed to get current working directory: %v", err)
	}

	var outPath string
	var trimMargin int
	var mscoreBin string
	var xmlOnly bool
	pflag.StringVarP(&outPath, "out", "o", "", "output image path (default: chord.png, or the chord file with a .png extension)")
	pflag.IntVarP(&trimMargin, "trim", "T", render.DefaultTrimMargin, "pixel margin to leave when trimming the image")
	pflag.StringVar(&mscoreBin, "mscore", render.DefaultBin, "MuseScore command to run")
	pflag.BoolVarP(&xmlOnly, "xml-only", "x", false, "write the MusicXML file and skip rendering")
	pflag.Parse()

	pitches, base, err := chordInput(cwd, pflag.Args())
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Printf("User cancelled the file dialog")
			os.Exit(1)
		}
		logger.Fatalf("failed to read chord: %v", err)
	}

	chord := musictheory.NewChord(pitches...)
	if chord.Len() == 0 {
		logger.Fatalf("no pitches in chord")
	}
	logger.Printf("Chord: %v", chord)

	doc, err := musicxml.ChordScore(chord)
	if err != nil {
		logger.Fatalf("error generating MusicXML: %v", err)
	}

	if outPath == "" {
		outPath = base + ".png"
	}
	xmlPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".xml"
	if err := os.WriteFile(xmlPath, doc, 0o644); err != nil {
		logger.Fatalf("Error writing output file: %v", err)
	}
	logger.Printf("Wrote %s", xmlPath)

	if xmlOnly {
		return
	}

	r := render.New(logger)
	r.Bin = mscoreBin
	r.TrimMargin = trimMargin
	if err := r.Render(xmlPath, outPath); err != nil {
		// Keep the MusicXML file that was already written.
		if errors.Is(err, render.ErrNotInstalled) {
			logger.Printf("%v", err)
		} else {
			logger.Printf("Error generating image: %v", err)
		}
		os.Exit(1)
	}
	logger.Printf("Wrote %s", outPath)
}

// chordInput returns the chord's pitches and the base path for output files.
// Pitches come from the command-line args, from a chord file named as the
// single arg, or from a file chosen in an interactive dialog.
func chordInput(cwd string, args []string) ([]musictheory.Pitch, string, error) {
	// A single .txt argument names a chord file.
	if len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".txt") {
		absPath, err := filepath.Abs(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("cannot get absolute path: %w", err)
		}
		if err := validatePath(absPath); err != nil {
			return nil, "", fmt.Errorf("passed argument is not a valid path: %w", err)
		}
		pitches, err := readChordFile(absPath)
		if err != nil {
			return nil, "", err
		}
		return pitches, strings.TrimSuffix(absPath, filepath.Ext(absPath)), nil
	}

	// Remaining args are pitch names.
	if len(args) > 0 {
		pitches, err := parsePitches(args)
		if err != nil {
			return nil, "", err
		}
		return pitches, "chord", nil
	}

	// Otherwise open the file dialog.
	path, err := dialog.
		File().
		Title("Open chord file").
		Filter("Chord files (*.txt)", "txt").
		SetStartDir(cwd).
		Load()
	if err != nil {
		// Propagate the error. Caller will check for dialog.ErrCancelled.
		return nil, "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot get absolute path: %w", err)
	}

	// Check for empty path just in case.
	if absPath == "" {
		return nil, "", dialog.ErrCancelled
	}
	if err := validatePath(absPath); err != nil {
		return nil, "", fmt.Errorf("dialog selection invalid: %w", err)
	}
	pitches, err := readChordFile(absPath)
	if err != nil {
		return nil, "", err
	}
	return pitches, strings.TrimSuffix(absPath, filepath.Ext(absPath)), nil
}

func parsePitches(tokens []string) ([]musictheory.Pitch, error) {
	pitches := make([]musictheory.Pitch, 0, len(tokens))
	for _, tok := range tokens {
		p, err := musictheory.ParsePitch(tok)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, p)
	}
	return pitches, nil
}

// readChordFile reads pitches from a text file: either a braced chord like
// {C4,E4,G4} or pitch names separated by whitespace.
func readChordFile(path string) ([]musictheory.Pitch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading chord file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "{") {
		chord, err := musictheory.ParseChord(text)
		if err != nil {
			return nil, err
		}
		return chord.Pitches(), nil
	}
	return parsePitches(strings.Fields(text))
}

// validatePath performs simple checks to verify if a file exists or not.
func validatePath(p string) error {
	if strings.ToLower(filepath.Ext(p)) != ".txt" {
		return fmt.Errorf("file must have .txt extension")
	}
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("cannot stat file: %w", err)
	}
	return nil
}
