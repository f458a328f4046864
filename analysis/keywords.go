package analysis

import "strings"

// CrisisKeywords is the crisis lexicon. Checked on every call as a safety
// net, even when a crisis model is loaded. Order matters: matches are
// reported in lexicon order so trigger lists are deterministic.
var CrisisKeywords = []string{
	"suicide", "kill myself", "kill me", "want to die", "end my life",
	"end it all", "hurt myself", "self harm", "cutting myself",
	"overdose", "not worth living", "better off dead", "no reason to live",
	"can't go on", "give up", "hopeless", "worthless",
}

// High-risk emotions that may indicate crisis when detected with high confidence.
var crisisEmotions = []string{"fear", "sadness", "disgust"}

// Sentiment fallback lexicons.
var (
	positiveWords = []string{"happy", "good", "great", "love", "excellent", "wonderful", "amazing"}
	negativeWords = []string{"sad", "bad", "hate", "terrible", "awful", "horrible", "angry"}
)

type emotionLexicon struct {
	name  string
	words []string
}

// emotionLexicons drives the emotion fallback. Declaration order is the
// tie-break order, so it must not be resorted.
var emotionLexicons = []emotionLexicon{
	{"joy", []string{"happy", "glad", "excited", "wonderful", "great", "love"}},
	{"sadness", []string{"sad", "depressed", "unhappy", "miserable", "crying", "lonely"}},
	{"anger", []string{"angry", "furious", "mad", "annoyed", "frustrated", "hate"}},
	{"fear", []string{"scared", "afraid", "worried", "anxious", "nervous", "terrified"}},
	{"surprise", []string{"surprised", "shocked", "amazed", "unexpected", "wow"}},
}

// matchCrisisKeywords returns the lexicon phrases contained in text, in
// lexicon order. Empty text yields an empty list, not an error.
func matchCrisisKeywords(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range CrisisKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func countHits(lowerText string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(lowerText, w) {
			count++
		}
	}
	return count
}

func isHighRiskEmotion(emotion string) bool {
	lower := strings.ToLower(emotion)
	for _, e := range crisisEmotions {
		if lower == e {
			return true
		}
	}
	return false
}
