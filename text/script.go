package text

import (
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the dominant writing direction of a string.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is text containing right-to-left runs.
	DirectionRTL
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// Analysis describes the script content of a string.
type Analysis struct {
	Direction Direction
	// Script is the script of the first letter, language.Latin if none.
	Script language.Script
	// Runs is the number of directional runs.
	Runs int
}

// Analyze resolves the bidirectional runs of s and detects its script.
func Analyze(s string) Analysis {
	a := Analysis{Direction: DirectionLTR, Script: detectScript(s)}
	if s == "" {
		return a
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return a
	}
	ordering, err := p.Order()
	if err != nil {
		return a
	}
	a.Runs = ordering.NumRuns()
	for i := 0; i < a.Runs; i++ {
		if run := ordering.Run(i); run.Direction() == bidi.RightToLeft {
			a.Direction = DirectionRTL
			break
		}
	}
	return a
}

// detectScript returns the script of the first letter of s.
func detectScript(s string) language.Script {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
