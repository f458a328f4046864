package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-soultalk/predictors"
)

func TestAnalyzeTextCompleteAssemblesAllVerdicts(t *testing.T) {
	a := &Analyzer{
		Sentiment: fakePredictor{result: predictors.Result{Label: "NEGATIVE", Score: 0.91, Available: true}},
		Emotion: fakePredictor{result: predictors.Result{
			AllScores: map[string]float64{"sadness": 0.8, "joy": 0.05},
			Available: true,
		}},
	}
	text := "I feel hopeless and I don't know who to talk to about any of this"

	result := a.AnalyzeTextComplete(text)

	assert.Equal(t, text, result.Text)
	assert.Equal(t, "negative", result.Sentiment)
	assert.Equal(t, 0.91, result.SentimentScore)
	assert.Equal(t, "sadness", result.Emotion)
	assert.Equal(t, 0.8, result.EmotionConfidence)

	// Crisis fusion consumed the emotion verdict: keyword + high-confidence
	// sadness on long text is the combined row.
	assert.True(t, result.IsCrisis)
	assert.Equal(t, 0.95, result.CrisisConfidence)
	require.NotEmpty(t, result.CrisisTriggers)
	assert.Equal(t, "keyword:hopeless", result.CrisisTriggers[0].String())

	assert.Equal(t, map[string]string{
		"sentiment": "model",
		"emotion":   "model",
		"crisis":    "combined",
	}, result.Sources)
}

func TestAnalyzeTextCompleteEchoTruncation(t *testing.T) {
	a := &Analyzer{}
	long := strings.Repeat("å", 150)

	result := a.AnalyzeTextComplete(long)

	runes := []rune(result.Text)
	assert.Len(t, runes, 103) // 100 runes plus "..."
	assert.True(t, strings.HasSuffix(result.Text, "..."))
	assert.Equal(t, strings.Repeat("å", 100), string(runes[:100]))
}

func TestAnalyzeTextCompleteShortTextEchoedVerbatim(t *testing.T) {
	a := &Analyzer{}
	result := a.AnalyzeTextComplete("just checking in")
	assert.Equal(t, "just checking in", result.Text)
}

func TestAnalyzeTextCompleteConfidencesInRange(t *testing.T) {
	// Regardless of input and predictor availability, every score the
	// composite carries stays in [0,1].
	analyzers := []*Analyzer{
		{},
		{
			Sentiment: fakePredictor{result: predictors.Result{Label: "POSITIVE", Score: 2.5, Available: true}},
			Emotion:   fakePredictor{result: predictors.Result{Label: "joy", Score: -0.3, Available: true}},
		},
	}
	inputs := []string{
		"",
		"ok",
		"I am so happy and excited about everything",
		"I feel worthless and want to end it all, nothing helps anymore",
		strings.Repeat("sad ", 200),
	}

	for _, a := range analyzers {
		for _, text := range inputs {
			result := a.AnalyzeTextComplete(text)
			assert.GreaterOrEqual(t, result.SentimentScore, 0.0)
			assert.LessOrEqual(t, result.SentimentScore, 1.0)
			assert.GreaterOrEqual(t, result.EmotionConfidence, 0.0)
			assert.LessOrEqual(t, result.EmotionConfidence, 1.0)
			assert.GreaterOrEqual(t, result.CrisisConfidence, 0.0)
			assert.LessOrEqual(t, result.CrisisConfidence, 1.0)
			for _, tr := range result.CrisisTriggers {
				assert.GreaterOrEqual(t, tr.Confidence, 0.0)
				assert.LessOrEqual(t, tr.Confidence, 1.0)
			}
		}
	}
}

func TestAnalyzeTextCompleteEmptyInput(t *testing.T) {
	a := &Analyzer{}

	result := a.AnalyzeTextComplete("   ")

	assert.Equal(t, "neutral", result.Sentiment)
	assert.Equal(t, "neutral", result.Emotion)
	assert.False(t, result.IsCrisis)
	assert.Equal(t, 0.0, result.CrisisConfidence)
	assert.Empty(t, result.CrisisTriggers)
	assert.Equal(t, "empty", result.Sources["sentiment"])
	assert.Equal(t, "empty", result.Sources["emotion"])
	assert.Equal(t, "empty", result.Sources["crisis"])
}
