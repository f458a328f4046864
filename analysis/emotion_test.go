package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-soultalk/predictors"
)

func TestAnalyzeEmotionModelDistribution(t *testing.T) {
	scores := map[string]float64{
		"joy":     0.05,
		"sadness": 0.72,
		"anger":   0.13,
		"fear":    0.10,
	}
	a := &Analyzer{
		Emotion: fakePredictor{result: predictors.Result{AllScores: scores, Available: true}},
	}

	result := a.AnalyzeEmotion("I miss them so much")

	assert.Equal(t, "sadness", result.Emotion)
	assert.Equal(t, 0.72, result.Confidence)
	assert.Equal(t, scores, result.AllEmotions)
	assert.Equal(t, "model", result.Source)
}

func TestAnalyzeEmotionModelSingleLabel(t *testing.T) {
	a := &Analyzer{
		Emotion: fakePredictor{result: predictors.Result{Label: "fear", Score: 0.81, Available: true}},
	}

	result := a.AnalyzeEmotion("something is wrong")

	assert.Equal(t, "fear", result.Emotion)
	assert.Equal(t, 0.81, result.Confidence)
	assert.Empty(t, result.AllEmotions)
	assert.Equal(t, "model", result.Source)
}

func TestArgMaxScoreTieBreaksLexicographically(t *testing.T) {
	label, score := argMaxScore(map[string]float64{
		"surprise": 0.4,
		"anger":    0.4,
		"joy":      0.1,
	})
	assert.Equal(t, "anger", label)
	assert.Equal(t, 0.4, score)
}

func TestAnalyzeEmotionFallbackCounts(t *testing.T) {
	a := &Analyzer{}

	tests := []struct {
		name    string
		text    string
		emotion string
		conf    float64
	}{
		{"sadness wins by count", "I feel sad and lonely, though a little excited", "sadness", 0.6},
		{"fear wins", "I'm scared and anxious and worried", "fear", 0.6},
		{"no hits is neutral", "the sky is blue today", "neutral", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.AnalyzeEmotion(tt.text)
			assert.Equal(t, tt.emotion, result.Emotion)
			assert.Equal(t, tt.conf, result.Confidence)
			assert.Equal(t, "fallback", result.Source)
		})
	}
}

func TestAnalyzeEmotionFallbackTieKeepsFirstDeclared(t *testing.T) {
	a := &Analyzer{}

	// One joy hit ("happy") and one sadness hit ("sad"): joy is declared first
	// so joy wins the tie.
	result := a.AnalyzeEmotion("happy mornings, sad evenings")
	assert.Equal(t, "joy", result.Emotion)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestAnalyzeEmotionEmpty(t *testing.T) {
	a := &Analyzer{
		Emotion: fakePredictor{result: predictors.Result{Label: "joy", Score: 0.9, Available: true}},
	}

	result := a.AnalyzeEmotion("  \t ")

	assert.Equal(t, "neutral", result.Emotion)
	assert.Equal(t, 0.5, result.Confidence)
	assert.NotNil(t, result.AllEmotions)
	assert.Empty(t, result.AllEmotions)
	assert.Equal(t, "empty", result.Source)
}

func TestAnalyzeEmotionFallbackDeterministic(t *testing.T) {
	a := &Analyzer{}
	text := "scared and angry and crying"
	first := a.AnalyzeEmotion(text)
	second := a.AnalyzeEmotion(text)
	assert.Equal(t, first, second)
}
