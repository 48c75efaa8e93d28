package dice

import (
	"math"
	"testing"

	"github.com/lox/liarsdice/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollRange(t *testing.T) {
	t.Parallel()
	rng := randutil.New(7)
	for i := 0; i < 1000; i++ {
		f := Roll(rng)
		require.True(t, f.Valid(), "roll %d produced %d", i, f)
	}
}

func TestRollDistribution(t *testing.T) {
	t.Parallel()
	rng := randutil.New(42)
	const rolls = 12000
	var counts [Sides + 1]int
	for i := 0; i < rolls; i++ {
		counts[Roll(rng)]++
	}

	expected := float64(rolls) / Sides
	for face := MinFace; face <= MaxFace; face++ {
		deviation := math.Abs(float64(counts[face])-expected) / expected
		assert.Less(t, deviation, 0.1, "face %d appeared %d times", face, counts[face])
	}
}

func TestFixedSourceScriptsRolls(t *testing.T) {
	t.Parallel()
	src := Fixed(6, 1, 3)
	assert.Equal(t, []Face{6, 1, 3, 6}, RollN(src, 4))
}

func TestRollNNonPositive(t *testing.T) {
	t.Parallel()
	assert.Empty(t, RollN(Fixed(1), 0))
	assert.Empty(t, RollN(Fixed(1), -2))
}

func TestCountAndHistogram(t *testing.T) {
	t.Parallel()
	faces := []Face{2, 5, 5, 1, 5}

	assert.Equal(t, 3, Count(faces, 5))
	assert.Equal(t, 0, Count(faces, 6))

	h := Histogram(faces)
	assert.Equal(t, 1, h[1])
	assert.Equal(t, 1, h[2])
	assert.Equal(t, 3, h[5])
	assert.Equal(t, 0, h[6])
}

func TestFaceFormatting(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "4", Face(4).String())
	assert.Equal(t, "⚀", Face(1).Pips())
	assert.Equal(t, "⚅", Face(6).Pips())
	assert.Equal(t, "?", Face(0).Pips())
	assert.Equal(t, "1 6 3", Format([]Face{1, 6, 3}))
	assert.False(t, Face(7).Valid())
}
