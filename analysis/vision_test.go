package analysis

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-soultalk/predictors"
	"go-soultalk/types"
)

type fakeFacePredictor struct {
	result predictors.FaceResult
}

func (f fakeFacePredictor) DetectBlendshapes(image []byte) predictors.FaceResult {
	return f.result
}

func TestMetricsFromBlendshapes(t *testing.T) {
	shapes := predictors.Blendshapes{
		"mouthSmileLeft":  0.4,
		"mouthSmileRight": 0.6,
		"mouthFrownLeft":  0.2,
		"mouthFrownRight": 0.4,
		"browDownLeft":    0.1,
		"browDownRight":   0.3,
		"browInnerUp":     0.7,
		"jawOpen":         0.5,
		"eyeWideLeft":     0.2,
		"eyeWideRight":    0.4,
		"eyeSquintLeft":   0.6,
		"eyeSquintRight":  0.8,
	}

	m := MetricsFromBlendshapes(shapes)

	assert.InDelta(t, 0.5, m.Smile, 1e-9)
	assert.InDelta(t, 0.3, m.Frown, 1e-9)
	assert.InDelta(t, 0.2, m.BrowDown, 1e-9)
	assert.InDelta(t, 0.7, m.BrowUp, 1e-9)
	assert.InDelta(t, 0.5, m.JawOpen, 1e-9)
	assert.InDelta(t, 0.3, m.EyeWide, 1e-9)
	assert.InDelta(t, 0.7, m.EyeSquint, 1e-9)
}

func TestMetricsFromBlendshapesMissingCategoriesDefaultToZero(t *testing.T) {
	m := MetricsFromBlendshapes(predictors.Blendshapes{})
	assert.Equal(t, types.FaceMetrics{}, m)
}

func TestClassifyFaceSmilingEyesSquinting(t *testing.T) {
	shapes := predictors.Blendshapes{
		"mouthSmileLeft":  0.5,
		"mouthSmileRight": 0.5,
		"eyeSquintLeft":   0.3,
		"eyeSquintRight":  0.3,
	}

	emotion, confidence := ClassifyFace(MetricsFromBlendshapes(shapes))

	assert.Equal(t, "happy", emotion)
	assert.InDelta(t, 1.0, confidence, 1e-9)
}

func TestClassifyFaceAllZero(t *testing.T) {
	emotion, confidence := ClassifyFace(types.FaceMetrics{})
	assert.Equal(t, "neutral", emotion)
	assert.Equal(t, 0.5, confidence)
}

func TestClassifyFaceCascade(t *testing.T) {
	tests := []struct {
		name       string
		metrics    types.FaceMetrics
		emotion    string
		confidence float64
	}{
		{"frown", types.FaceMetrics{Frown: 0.4}, "sad", 0.6 + 0.4*0.3},
		{"brow down", types.FaceMetrics{BrowDown: 0.5}, "angry", 0.6 + 0.5*0.3},
		{"jaw open eyes wide", types.FaceMetrics{JawOpen: 0.5, EyeWide: 0.4}, "surprised", 0.7},
		{"brow raise eyes wide", types.FaceMetrics{BrowUp: 0.4, EyeWide: 0.25}, "fearful", 0.6},
		{"weak smile", types.FaceMetrics{Smile: 0.2}, "happy", 0.5 + 0.2*0.5},
		{"weak frown", types.FaceMetrics{Frown: 0.2}, "sad", 0.5},
		{"neutral", types.FaceMetrics{Smile: 0.1, Frown: 0.1}, "neutral", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotion, confidence := ClassifyFace(tt.metrics)
			assert.Equal(t, tt.emotion, emotion)
			assert.InDelta(t, tt.confidence, confidence, 1e-9)
		})
	}
}

func TestClassifyFaceFirstMatchWins(t *testing.T) {
	// A strong squinting smile beats a simultaneous strong frown because the
	// smile rule is declared first.
	m := types.FaceMetrics{Smile: 0.5, EyeSquint: 0.3, Frown: 0.5}
	emotion, _ := ClassifyFace(m)
	assert.Equal(t, "happy", emotion)

	// Without the squint the smile rule no longer matches and the frown wins.
	m.EyeSquint = 0.1
	emotion, _ = ClassifyFace(m)
	assert.Equal(t, "sad", emotion)
}

func TestFaceRuleOrderIsPinned(t *testing.T) {
	// The cascade's first-match-wins ordering is a deliberate design choice.
	// This test fails if anyone resorts the table.
	want := []string{
		"strong_smile",
		"frown",
		"brow_down",
		"jaw_open_eyes_wide",
		"brow_raise_eyes_wide",
		"weak_smile",
		"weak_frown",
	}
	require.Len(t, faceRules, len(want))
	for i, rule := range faceRules {
		assert.Equal(t, want[i], rule.name, "rule %d out of order", i)
	}
}

func TestClassifyFaceConfidenceClamped(t *testing.T) {
	// 0.5 + smile would exceed 1.0 without the clamp.
	m := types.FaceMetrics{Smile: 0.9, EyeSquint: 0.9}
	_, confidence := ClassifyFace(m)
	assert.Equal(t, 1.0, confidence)
}

func TestDetectFaceEmotionDecodeError(t *testing.T) {
	a := &Analyzer{Face: fakeFacePredictor{}}

	result := a.DetectFaceEmotion("not base64 at all!!!")

	assert.False(t, result.FaceDetected)
	assert.Equal(t, "neutral", result.Emotion)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "decode_error", result.Source)
}

func TestDetectFaceEmotionNoFace(t *testing.T) {
	a := &Analyzer{Face: fakeFacePredictor{result: predictors.FaceResult{Available: true}}}
	image := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	result := a.DetectFaceEmotion(image)

	assert.False(t, result.FaceDetected)
	assert.Equal(t, "neutral", result.Emotion)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "no_face", result.Source)
}

func TestDetectFaceEmotionLandmarkerUnavailable(t *testing.T) {
	a := &Analyzer{
		Face: fakeFacePredictor{result: predictors.FaceResult{Failure: predictors.FailureLoadFailed}},
	}
	image := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	result := a.DetectFaceEmotion(image)

	assert.False(t, result.FaceDetected)
	assert.Equal(t, "error", result.Source)
	assert.NotEmpty(t, result.Error)
}

func TestDetectFaceEmotionFirstFaceOnly(t *testing.T) {
	a := &Analyzer{
		Face: fakeFacePredictor{result: predictors.FaceResult{
			Available: true,
			Faces: []predictors.Blendshapes{
				{"mouthSmileLeft": 0.5, "mouthSmileRight": 0.5, "eyeSquintLeft": 0.3, "eyeSquintRight": 0.3},
				{"mouthFrownLeft": 0.9, "mouthFrownRight": 0.9},
			},
		}},
	}
	image := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	result := a.DetectFaceEmotion(image)

	assert.True(t, result.FaceDetected)
	assert.Equal(t, "happy", result.Emotion)
	assert.Equal(t, "landmarker", result.Source)

	require.NotNil(t, result.Metrics)
	assert.InDelta(t, 0.5, result.Metrics["smile"], 1e-9)
	assert.Contains(t, result.Metrics, "mouth_open")
	assert.Contains(t, result.Metrics, "eye_openness")
	assert.Contains(t, result.Metrics, "brow_raise")
}

func TestDetectFaceEmotionDataURLPrefix(t *testing.T) {
	a := &Analyzer{Face: fakeFacePredictor{result: predictors.FaceResult{Available: true}}}
	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	result := a.DetectFaceEmotion(image)

	// Prefix stripped, decode succeeded; the fake just found no faces.
	assert.Equal(t, "no_face", result.Source)
}
