package analysis

import (
	"go-soultalk/types"
)

const textEchoLimit = 100

// AnalyzeTextComplete runs the full pipeline for one piece of text:
// sentiment, then emotion, then crisis fusion (which consumes the emotion
// verdict). One call here triggers at most one call per text predictor.
func (a *Analyzer) AnalyzeTextComplete(text string) types.TextAnalysis {
	sentiment := a.AnalyzeSentiment(text)
	emotion := a.AnalyzeEmotion(text)
	crisis := a.DetectCrisis(text, emotion)

	echo := text
	if runes := []rune(text); len(runes) > textEchoLimit {
		echo = string(runes[:textEchoLimit]) + "..."
	}

	return types.TextAnalysis{
		Text:              echo,
		Sentiment:         sentiment.Label,
		SentimentScore:    sentiment.Score,
		Emotion:           emotion.Emotion,
		EmotionConfidence: emotion.Confidence,
		AllEmotions:       emotion.AllEmotions,
		IsCrisis:          crisis.IsCrisis,
		CrisisConfidence:  crisis.Confidence,
		CrisisTriggers:    crisis.Triggers,
		Sources: map[string]string{
			"sentiment": sentiment.Source,
			"emotion":   emotion.Source,
			"crisis":    crisis.Source,
		},
	}
}
