package predictors

// Failure says why a predictor had no answer. Callers must treat every
// reason the same way (fall back); the distinction exists for logs and tests.
type Failure string

const (
	FailureNone          Failure = ""
	FailureNotConfigured Failure = "not_configured"
	FailureLoadFailed    Failure = "load_failed"
	FailureInference     Failure = "inference_failed"
)

// Result is the uniform output of every text predictor. When Available is
// false the other fields are zero and Failure holds the reason.
type Result struct {
	Label     string
	Score     float64
	AllScores map[string]float64
	Available bool
	Failure   Failure
}

func Unavailable(reason Failure) Result {
	return Result{Failure: reason}
}

// TextPredictor is the per-modality contract: it never returns an error and
// never panics past its boundary. Any internal problem becomes an
// unavailable Result.
type TextPredictor interface {
	Predict(text string) Result
}

// Blendshapes maps blendshape category names (mouthSmileLeft, jawOpen, ...)
// to activation scores in [0,1].
type Blendshapes map[string]float64

// FaceResult carries zero or more detected faces. Available false means the
// landmarker itself could not run; an empty Faces slice with Available true
// means it ran and found nobody.
type FaceResult struct {
	Faces     []Blendshapes
	Available bool
	Failure   Failure
}

type FacePredictor interface {
	DetectBlendshapes(image []byte) FaceResult
}

// maxPredictorInput bounds the text handed to a model. The keyword fallback
// path always sees the full original text.
const maxPredictorInput = 512

// TruncateInput returns the first 512 runes of text.
func TruncateInput(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPredictorInput {
		return text
	}
	return string(runes[:maxPredictorInput])
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
