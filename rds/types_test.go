package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParams_Validate walks every parameter constraint to its sentinel.
func TestParams_Validate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.Eta = 1.5
	assert.ErrorIs(t, p.Validate(), ErrBadEta)

	p = DefaultParams()
	p.Alpha = -0.1
	assert.ErrorIs(t, p.Validate(), ErrBadAlpha)

	p = DefaultParams()
	p.ContextSize = 0
	assert.ErrorIs(t, p.Validate(), ErrBadContextSize)

	p = DefaultParams()
	p.OverlapThreshold = 2
	assert.ErrorIs(t, p.Validate(), ErrBadOverlap)
}

// TestLexiconType_String verifies the tag names, including the fallback.
func TestLexiconType_String(t *testing.T) {
	assert.Equal(t, "start", LexStart.String())
	assert.Equal(t, "end", LexEnd.String())
	assert.Equal(t, "symbol", LexSymbol.String())
	assert.Equal(t, "pattern", LexPattern.String())
	assert.Equal(t, "class", LexClass.String())
	assert.Equal(t, "unknown", LexiconType(42).String())
}

// TestLexiconType_WireValues pins the numeric tags that the JSON report
// format relies on.
func TestLexiconType_WireValues(t *testing.T) {
	assert.Equal(t, 0, int(LexStart))
	assert.Equal(t, 1, int(LexEnd))
	assert.Equal(t, 2, int(LexSymbol))
	assert.Equal(t, 3, int(LexPattern))
	assert.Equal(t, 4, int(LexClass))
}

// TestSignificance_Ordering verifies that candidates compare by their weaker
// boundary p-value.
func TestSignificance_Ordering(t *testing.T) {
	strong := Significance{Left: 1e-9, Right: 1e-6}
	weak := Significance{Left: 1e-12, Right: 1e-3}

	assert.Equal(t, 1e-6, strong.max())
	assert.True(t, strong.less(weak), "smaller max is more significant")
	assert.False(t, weak.less(strong))
	assert.False(t, strong.less(strong), "strict ordering")
}

// TestSignificance_IsSignificant verifies that both boundaries must beat
// alpha.
func TestSignificance_IsSignificant(t *testing.T) {
	assert.True(t, Significance{Left: 0.001, Right: 0.004}.isSignificant(0.01))
	assert.False(t, Significance{Left: 0.001, Right: 0.02}.isSignificant(0.01))
	assert.False(t, Significance{Left: 0.02, Right: 0.001}.isSignificant(0.01))
}

// TestRange_Len verifies the inclusive span width.
func TestRange_Len(t *testing.T) {
	assert.Equal(t, 1, Range{Start: 3, End: 3}.Len())
	assert.Equal(t, 4, Range{Start: 2, End: 5}.Len())
}
