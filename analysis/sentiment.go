package analysis

import (
	"log"
	"strings"

	"go-soultalk/types"
)

// sentimentLabelMap translates predictor-native label vocabularies to the
// canonical positive/negative/neutral labels. Unknown labels pass through
// lowercased.
var sentimentLabelMap = map[string]string{
	"positive": "positive",
	"negative": "negative",
	"neutral":  "neutral",
	"POSITIVE": "positive",
	"NEGATIVE": "negative",
	"NEUTRAL":  "neutral",
	"LABEL_0":  "negative",
	"LABEL_1":  "neutral",
	"LABEL_2":  "positive",
}

// AnalyzeSentiment resolves sentiment for text: predictor first, keyword
// counting second. The fallback inspects the full original text, not the
// truncated predictor input.
func (a *Analyzer) AnalyzeSentiment(text string) types.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return types.SentimentResult{Label: "neutral", Score: 0.5, Source: "empty"}
	}

	res := predict(a.Sentiment, text)
	if res.Available {
		label, ok := sentimentLabelMap[res.Label]
		if !ok {
			label = strings.ToLower(res.Label)
		}
		log.Printf("[SENTIMENT] Model label %q mapped to %q (score %.4f)", res.Label, label, res.Score)
		return types.SentimentResult{Label: label, Score: clamp01(res.Score), Source: "model"}
	}

	log.Printf("[SENTIMENT] Model unavailable (%s), using keyword fallback", res.Failure)
	lower := strings.ToLower(text)
	posCount := countHits(lower, positiveWords)
	negCount := countHits(lower, negativeWords)

	if posCount > negCount {
		return types.SentimentResult{Label: "positive", Score: 0.6, Source: "fallback"}
	}
	if negCount > posCount {
		return types.SentimentResult{Label: "negative", Score: 0.6, Source: "fallback"}
	}
	return types.SentimentResult{Label: "neutral", Score: 0.5, Source: "fallback"}
}
