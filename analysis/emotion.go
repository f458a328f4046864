package analysis

import (
	"log"
	"sort"
	"strings"

	"go-soultalk/types"
)

// AnalyzeEmotion resolves the dominant emotion for text. The predictor may
// return a full distribution or a single top label; both shapes are handled,
// with the arg-max surfaced as the top emotion either way.
func (a *Analyzer) AnalyzeEmotion(text string) types.EmotionResult {
	if strings.TrimSpace(text) == "" {
		return types.EmotionResult{Emotion: "neutral", Confidence: 0.5, AllEmotions: map[string]float64{}, Source: "empty"}
	}

	res := predict(a.Emotion, text)
	if res.Available {
		if len(res.AllScores) > 0 {
			top, conf := argMaxScore(res.AllScores)
			log.Printf("[EMOTION] Top emotion: %s (%.4f)", top, conf)
			return types.EmotionResult{Emotion: top, Confidence: clamp01(conf), AllEmotions: res.AllScores, Source: "model"}
		}
		log.Printf("[EMOTION] Top emotion: %s (%.4f)", res.Label, res.Score)
		return types.EmotionResult{Emotion: res.Label, Confidence: clamp01(res.Score), AllEmotions: map[string]float64{}, Source: "model"}
	}

	log.Printf("[EMOTION] Model unavailable (%s), using keyword fallback", res.Failure)
	lower := strings.ToLower(text)

	// Count hits per lexicon in declaration order. A category wins only by
	// count; ties keep the earlier-declared category, and zero hits across
	// the board means neutral.
	best := ""
	bestCount := 0
	for _, lex := range emotionLexicons {
		if n := countHits(lower, lex.words); n > bestCount {
			best = lex.name
			bestCount = n
		}
	}

	if bestCount == 0 {
		return types.EmotionResult{Emotion: "neutral", Confidence: 0.5, AllEmotions: map[string]float64{}, Source: "fallback"}
	}
	return types.EmotionResult{Emotion: best, Confidence: 0.6, AllEmotions: map[string]float64{}, Source: "fallback"}
}

// argMaxScore picks the highest-scoring label; equal scores break toward the
// lexicographically smaller label so the result never depends on map order.
func argMaxScore(scores map[string]float64) (string, float64) {
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	top := ""
	topScore := -1.0
	for _, label := range labels {
		if scores[label] > topScore {
			top = label
			topScore = scores[label]
		}
	}
	return top, topScore
}
