package predictors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateInput(t *testing.T) {
	short := "under the limit"
	assert.Equal(t, short, TruncateInput(short))

	exact := strings.Repeat("a", 512)
	assert.Equal(t, exact, TruncateInput(exact))

	over := strings.Repeat("a", 513)
	assert.Len(t, TruncateInput(over), 512)
}

func TestTruncateInputCountsRunesNotBytes(t *testing.T) {
	// 600 two-byte runes: the cut happens at 512 runes, never mid-rune.
	text := strings.Repeat("é", 600)
	got := TruncateInput(text)
	assert.Equal(t, 512, len([]rune(got)))
	assert.Equal(t, strings.Repeat("é", 512), got)
}

func TestUnavailable(t *testing.T) {
	res := Unavailable(FailureInference)
	assert.False(t, res.Available)
	assert.Equal(t, FailureInference, res.Failure)
	assert.Empty(t, res.Label)
	assert.Zero(t, res.Score)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.3))
	assert.Equal(t, 0.42, clamp01(0.42))
	assert.Equal(t, 1.0, clamp01(1.8))
}
