package analysis

import (
	"encoding/base64"
	"fmt"
	"log"
	"math"
	"strings"

	"go-soultalk/predictors"
	"go-soultalk/types"
)

// MetricsFromBlendshapes derives the face metrics from raw blendshape
// activations. Paired left/right categories are averaged; missing categories
// read as zero.
func MetricsFromBlendshapes(shapes predictors.Blendshapes) types.FaceMetrics {
	pair := func(left, right string) float64 {
		return (shapes[left] + shapes[right]) / 2
	}
	return types.FaceMetrics{
		Smile:     pair("mouthSmileLeft", "mouthSmileRight"),
		Frown:     pair("mouthFrownLeft", "mouthFrownRight"),
		BrowDown:  pair("browDownLeft", "browDownRight"),
		BrowUp:    shapes["browInnerUp"],
		JawOpen:   shapes["jawOpen"],
		EyeWide:   pair("eyeWideLeft", "eyeWideRight"),
		EyeSquint: pair("eyeSquintLeft", "eyeSquintRight"),
	}
}

type faceRule struct {
	name    string
	matches func(types.FaceMetrics) bool
	verdict func(types.FaceMetrics) (string, float64)
}

// faceRules is evaluated strictly in declared order, first match wins.
// The ordering disambiguates overlapping expressions (a strong smile with
// squinting eyes beats a mild frown, a weak smile is only considered after
// every stronger signal has been ruled out). Do not resort.
var faceRules = []faceRule{
	{
		name:    "strong_smile",
		matches: func(m types.FaceMetrics) bool { return m.Smile > 0.3 && m.EyeSquint > 0.2 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "happy", math.Min(0.5+m.Smile, 1.0) },
	},
	{
		name:    "frown",
		matches: func(m types.FaceMetrics) bool { return m.Frown > 0.3 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "sad", 0.6 + m.Frown*0.3 },
	},
	{
		name:    "brow_down",
		matches: func(m types.FaceMetrics) bool { return m.BrowDown > 0.3 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "angry", 0.6 + m.BrowDown*0.3 },
	},
	{
		name:    "jaw_open_eyes_wide",
		matches: func(m types.FaceMetrics) bool { return m.JawOpen > 0.4 && m.EyeWide > 0.3 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "surprised", 0.7 },
	},
	{
		name:    "brow_raise_eyes_wide",
		matches: func(m types.FaceMetrics) bool { return m.BrowUp > 0.3 && m.EyeWide > 0.2 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "fearful", 0.6 },
	},
	{
		name:    "weak_smile",
		matches: func(m types.FaceMetrics) bool { return m.Smile > 0.15 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "happy", 0.5 + m.Smile*0.5 },
	},
	{
		name:    "weak_frown",
		matches: func(m types.FaceMetrics) bool { return m.Frown > 0.15 },
		verdict: func(m types.FaceMetrics) (string, float64) { return "sad", 0.5 },
	},
}

// ClassifyFace maps face metrics to an emotion and confidence via the
// ordered rule cascade. Confidence is clamped to [0,1] rather than trusting
// the rule formulas.
func ClassifyFace(m types.FaceMetrics) (string, float64) {
	for _, rule := range faceRules {
		if rule.matches(m) {
			label, conf := rule.verdict(m)
			return label, clamp01(conf)
		}
	}
	return "neutral", 0.5
}

// DetectFaceEmotion classifies the first face found in a base64-encoded
// image. Every failure mode yields a labeled neutral verdict with
// FaceDetected false; callers distinguish "no usable face signal" from a
// detected neutral expression via that flag.
func (a *Analyzer) DetectFaceEmotion(base64Image string) types.FaceEmotion {
	image, err := decodeBase64Image(base64Image)
	if err != nil {
		log.Printf("[FACE] Image decode failed: %v", err)
		return types.FaceEmotion{Emotion: "neutral", Confidence: 0.0, FaceDetected: false, Source: "decode_error"}
	}

	if a.Face == nil {
		return types.FaceEmotion{
			Emotion: "neutral", Confidence: 0.0, FaceDetected: false,
			Source: "error", Error: "face landmarker not available",
		}
	}

	result := a.Face.DetectBlendshapes(image)
	if !result.Available {
		return types.FaceEmotion{
			Emotion: "neutral", Confidence: 0.0, FaceDetected: false,
			Source: "error", Error: "face landmarker not available",
		}
	}

	if len(result.Faces) == 0 {
		return types.FaceEmotion{Emotion: "neutral", Confidence: 0.0, FaceDetected: false, Source: "no_face"}
	}

	// Only the first detected face is considered.
	m := MetricsFromBlendshapes(result.Faces[0])
	log.Printf("[FACE] smile=%.3f, frown=%.3f, brow_down=%.3f, brow_up=%.3f, jaw_open=%.3f, eye_wide=%.3f",
		m.Smile, m.Frown, m.BrowDown, m.BrowUp, m.JawOpen, m.EyeWide)

	emotion, confidence := ClassifyFace(m)

	return types.FaceEmotion{
		Emotion:      emotion,
		Confidence:   confidence,
		FaceDetected: true,
		Metrics: map[string]float64{
			"smile":        m.Smile,
			"frown":        m.Frown,
			"brow_down":    m.BrowDown,
			"mouth_open":   m.JawOpen,
			"eye_openness": m.EyeWide,
			"brow_raise":   m.BrowUp,
		},
		Source: "landmarker",
	}
}

// decodeBase64Image strips an optional data-URL prefix and decodes the rest.
func decodeBase64Image(base64Image string) ([]byte, error) {
	if idx := strings.IndexByte(base64Image, ','); idx >= 0 {
		base64Image = base64Image[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}
