package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swarm-installation/seed"
)

const testID = "123456789012345678901234"

type sliceTarget []Material

func (s sliceTarget) Count() int                    { return len(s) }
func (s sliceTarget) SetMaterial(i int, m Material) { s[i] = m }

func inGlow(t *testing.T, m Material) {
	t.Helper()
	for _, c := range m.Albedo {
		assert.GreaterOrEqual(t, c, GlowMin)
		assert.LessOrEqual(t, c, GlowMax)
	}
	assert.Equal(t, Metallic, m.Metallic)
	assert.Equal(t, Roughness, m.Roughness)
}

func TestDefaultMaterial(t *testing.T) {
	m := Default()
	assert.Equal(t, [3]float64{4, 4, 4}, m.Albedo)
	assert.Equal(t, 0.8, m.Metallic)
	assert.Equal(t, 0.1, m.Roughness)
}

func TestRandomColorFromIdentity(t *testing.T) {
	// Digits 10..18 of the id are "123", "456", "789" after skipping ten
	c := RandomColor(testID, seed.NormalizeExtractWidth)
	assert.InDelta(t, 2+2*123.0/999, c.R, 1e-9)
	assert.InDelta(t, 2+2*456.0/999, c.G, 1e-9)
	assert.InDelta(t, 2+2*789.0/999, c.B, 1e-9)
}

func TestRandomAppliesUniformMaterial(t *testing.T) {
	target := make(sliceTarget, 6)
	sys, err := New(Random, testID, target, seed.NormalizeParsedWidth)
	require.NoError(t, err)
	assert.Equal(t, Random, sys.Kind())
	for _, m := range target {
		assert.Equal(t, target[0], m)
		inGlow(t, m)
	}
}

func TestGradientRampsAcrossSlots(t *testing.T) {
	target := make(sliceTarget, 20)
	_, err := New(Gradient, testID, target, seed.NormalizeParsedWidth)
	require.NoError(t, err)
	for _, m := range target {
		inGlow(t, m)
	}
	assert.NotEqual(t, target[0], target[19])

	again := make(sliceTarget, 20)
	_, _ = New(Gradient, testID, again, seed.NormalizeParsedWidth)
	assert.Equal(t, target, again)
}

func TestCycleWalksGlowColors(t *testing.T) {
	assert.Equal(t, glowCycle[0], CycleColor(0))
	assert.Equal(t, glowCycle[1], CycleColor(CycleDuration/4))
	assert.InDelta(t, glowCycle[0].R, CycleColor(CycleDuration).R, 1e-9)

	mid := CycleColor(CycleDuration / 8)
	assert.InDelta(t, 3, mid.R, 1e-9)
	assert.InDelta(t, 2, mid.G, 1e-9)
	assert.InDelta(t, 3, mid.B, 1e-9)
}

func TestCycleAccumulatesTime(t *testing.T) {
	target := make(sliceTarget, 3)
	sys, err := New(Cycle, testID, target, seed.NormalizeParsedWidth)
	require.NoError(t, err)

	sys.Update(CycleDuration / 8)
	first := target[0]
	sys.Update(CycleDuration / 8)
	assert.NotEqual(t, first, target[0])
	assert.Equal(t, material(glowCycle[1]), target[0])
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(Kind(9), testID, make(sliceTarget, 1), seed.NormalizeParsedWidth)
	assert.Error(t, err)
	_, err = New(Random, testID, nil, seed.NormalizeParsedWidth)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("gradient")
	require.NoError(t, err)
	assert.Equal(t, Gradient, k)
	_, err = ParseKind("plaid")
	assert.Error(t, err)
}
