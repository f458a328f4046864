package types

// SentimentResult is the resolved sentiment for one piece of text.
// Source is "model" when a predictor produced it, "fallback" for the
// keyword heuristic, and "empty" for blank input.
type SentimentResult struct {
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// EmotionResult is the resolved emotion for one piece of text.
// AllEmotions holds the full distribution when the predictor supports one,
// otherwise it is empty.
type EmotionResult struct {
	Emotion     string             `json:"emotion"`
	Confidence  float64            `json:"confidence"`
	AllEmotions map[string]float64 `json:"all_emotions"`
	Source      string             `json:"source"`
}

// CrisisTrigger is one piece of evidence behind a crisis verdict: either a
// matched lexicon phrase (Kind "keyword") or a qualifying high-risk emotion
// (Kind "emotion", with the emotion's confidence).
type CrisisTrigger struct {
	Kind       string  `json:"kind"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence,omitempty"`
}

func (t CrisisTrigger) String() string {
	return t.Kind + ":" + t.Value
}

// CrisisResult is the unified crisis verdict for one piece of text.
// Invariant: IsCrisis implies a non-empty Triggers list, except when
// Source is "model" (a crisis classifier may flag without explicit triggers).
type CrisisResult struct {
	IsCrisis   bool            `json:"is_crisis"`
	Confidence float64         `json:"confidence"`
	Triggers   []CrisisTrigger `json:"triggers"`
	Source     string          `json:"source"`
}

// TextAnalysis is the composite verdict returned by the analyze-text endpoint.
type TextAnalysis struct {
	Text              string             `json:"text"`
	Sentiment         string             `json:"sentiment"`
	SentimentScore    float64            `json:"sentiment_score"`
	Emotion           string             `json:"emotion"`
	EmotionConfidence float64            `json:"emotion_confidence"`
	AllEmotions       map[string]float64 `json:"all_emotions"`
	IsCrisis          bool               `json:"is_crisis"`
	CrisisConfidence  float64            `json:"crisis_confidence"`
	CrisisTriggers    []CrisisTrigger    `json:"crisis_triggers"`
	Sources           map[string]string  `json:"sources"`
}

// FaceMetrics are blendshape activations averaged across the left/right pair
// where one exists. Every value is in [0,1].
type FaceMetrics struct {
	Smile     float64 `json:"smile"`
	Frown     float64 `json:"frown"`
	BrowDown  float64 `json:"brow_down"`
	BrowUp    float64 `json:"brow_up"`
	JawOpen   float64 `json:"jaw_open"`
	EyeWide   float64 `json:"eye_wide"`
	EyeSquint float64 `json:"eye_squint"`
}

// FaceEmotion is the verdict for one face image. FaceDetected false means no
// usable face signal (no face in frame, decode failure, or landmarker
// unavailable) and is distinct from a detected neutral expression.
type FaceEmotion struct {
	Emotion      string             `json:"emotion"`
	Confidence   float64            `json:"confidence"`
	FaceDetected bool               `json:"face_detected"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
	Source       string             `json:"source"`
	Error        string             `json:"error,omitempty"`
}
