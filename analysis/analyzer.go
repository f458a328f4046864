package analysis

import (
	"go-soultalk/predictors"
)

// Analyzer bundles the per-modality predictors behind the analysis pipeline.
// Any predictor may be nil, which is treated the same as a configured
// predictor that failed to load: the keyword fallback takes over. Tests
// inject fakes here instead of touching process globals.
type Analyzer struct {
	Sentiment predictors.TextPredictor
	Emotion   predictors.TextPredictor
	Crisis    predictors.TextPredictor
	Face      predictors.FacePredictor
}

// NewAnalyzer wires the analyzer to the remote model services.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Sentiment: predictors.NewTextPredictor(predictors.TaskSentiment),
		Emotion:   predictors.NewTextPredictor(predictors.TaskEmotion),
		Crisis:    predictors.NewTextPredictor(predictors.TaskCrisis),
		Face:      predictors.NewFacePredictor(),
	}
}

func predict(p predictors.TextPredictor, text string) predictors.Result {
	if p == nil {
		return predictors.Unavailable(predictors.FailureNotConfigured)
	}
	return p.Predict(text)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
