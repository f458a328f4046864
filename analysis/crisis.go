package analysis

import (
	"log"
	"strings"
	"unicode/utf8"

	"go-soultalk/types"
)

const (
	// Emotion signals only count when the classifier is this sure.
	emotionConfidenceGate = 0.7

	// Emotion-only signals are suppressed for short utterances; a single sad
	// word in a short message should not escalate on its own.
	shortTextGate = 50

	combinedConfidence = 0.95
	keywordConfidence  = 0.85
	emotionConfidence  = 0.60
	noCrisisConfidence = 0.10
)

// DetectCrisis produces the unified crisis verdict for text, consuming the
// already-computed emotion verdict.
//
// Precedence between the keyword+emotion fusion table and the dedicated
// crisis model is a logical OR: a positive model verdict can add a flag the
// table missed, and a table flag is never cleared by a negative model
// verdict. The keyword safety net always runs, model or no model.
func (a *Analyzer) DetectCrisis(text string, emotion types.EmotionResult) types.CrisisResult {
	if strings.TrimSpace(text) == "" {
		return types.CrisisResult{IsCrisis: false, Confidence: 0.0, Triggers: []types.CrisisTrigger{}, Source: "empty"}
	}

	verdict := fuseCrisisSignals(text, emotion)

	res := predict(a.Crisis, text)
	if res.Available && crisisModelPositive(res.Label) && !verdict.IsCrisis {
		log.Printf("[CRISIS] Model flagged text the fusion table did not (label %q, score %.2f)", res.Label, res.Score)
		verdict.IsCrisis = true
		verdict.Source = "model"
		if res.Score > verdict.Confidence {
			verdict.Confidence = clamp01(res.Score)
		}
	}

	return verdict
}

// fuseCrisisSignals applies the keyword+emotion decision table.
func fuseCrisisSignals(text string, emotion types.EmotionResult) types.CrisisResult {
	triggers := []types.CrisisTrigger{}

	for _, kw := range matchCrisisKeywords(text) {
		triggers = append(triggers, types.CrisisTrigger{Kind: "keyword", Value: kw})
	}
	keywordMatch := len(triggers) > 0

	emotionMatch := false
	if isHighRiskEmotion(emotion.Emotion) && emotion.Confidence > emotionConfidenceGate {
		triggers = append(triggers, types.CrisisTrigger{
			Kind:       "emotion",
			Value:      strings.ToLower(emotion.Emotion),
			Confidence: emotion.Confidence,
		})
		emotionMatch = true
	}

	longEnough := utf8.RuneCountInString(text) > shortTextGate

	switch {
	case keywordMatch && emotionMatch:
		return types.CrisisResult{IsCrisis: true, Confidence: combinedConfidence, Triggers: triggers, Source: "combined"}
	case keywordMatch:
		return types.CrisisResult{IsCrisis: true, Confidence: keywordConfidence, Triggers: triggers, Source: "keyword"}
	case emotionMatch && longEnough:
		return types.CrisisResult{IsCrisis: true, Confidence: emotionConfidence, Triggers: triggers, Source: "emotion"}
	}

	return types.CrisisResult{IsCrisis: false, Confidence: noCrisisConfidence, Triggers: []types.CrisisTrigger{}, Source: "none"}
}

// crisisModelPositive recognizes the crisis model's positive class by literal
// match, whatever label encoding the model was trained with.
func crisisModelPositive(label string) bool {
	switch strings.ToLower(label) {
	case "1", "true", "crisis":
		return true
	}
	return false
}
