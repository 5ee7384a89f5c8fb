package text

import "golang.org/x/image/font"

// Metrics holds the vertical metrics of a face in whole pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the tallest glyph.
	Ascent int

	// Descent is the distance from the baseline to the bottom of the lowest
	// glyph, positive below the baseline.
	Descent int

	// Height is the recommended distance between baselines.
	Height int
}

// metricsOf rounds x/image metrics outwards.
func metricsOf(m font.Metrics) Metrics {
	out := Metrics{
		Ascent:  m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
		Height:  m.Height.Ceil(),
	}
	if out.Height < out.Ascent+out.Descent {
		out.Height = out.Ascent + out.Descent
	}
	return out
}
