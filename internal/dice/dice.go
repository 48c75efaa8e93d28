// Package dice provides six-sided die faces and rolling over an injectable
// randomness source.
package dice

import (
	"strconv"
	"strings"

	"github.com/lox/liarsdice/internal/randutil"
)

// Sides is the number of faces on every die in the game.
const Sides = 6

// Face is the value shown on a die, 1 through 6.
type Face int

const (
	MinFace Face = 1
	MaxFace Face = Sides
)

// Valid reports whether f is a face a die can show.
func (f Face) Valid() bool {
	return f >= MinFace && f <= MaxFace
}

// String returns the face as a single digit.
func (f Face) String() string {
	return strconv.Itoa(int(f))
}

// Pips returns the unicode die glyph for f, or "?" for an invalid face.
func (f Face) Pips() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('⚀' + int(f) - 1))
}

// Roll returns a uniformly distributed face.
func Roll(src randutil.Source) Face {
	return Face(src.IntN(Sides) + 1)
}

// RollN rolls n dice in order.
func RollN(src randutil.Source, n int) []Face {
	if n <= 0 {
		return []Face{}
	}
	faces := make([]Face, n)
	for i := range faces {
		faces[i] = Roll(src)
	}
	return faces
}

// Count returns how many of faces show face.
func Count(faces []Face, face Face) int {
	n := 0
	for _, f := range faces {
		if f == face {
			n++
		}
	}
	return n
}

// Histogram returns the number of dice showing each face. Index 0 is unused.
func Histogram(faces []Face) [Sides + 1]int {
	var h [Sides + 1]int
	for _, f := range faces {
		if f.Valid() {
			h[f]++
		}
	}
	return h
}

// Format renders faces as space separated digits, e.g. "3 5 5 1".
func Format(faces []Face) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// Fixed returns a Source that makes Roll produce faces in the given order,
// wrapping around when exhausted.
func Fixed(faces ...Face) randutil.Source {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = int(f) - 1
	}
	return randutil.NewSequence(values...)
}
