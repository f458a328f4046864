package predictors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// TextTask selects which classifier head of the model service to call.
type TextTask string

const (
	TaskSentiment TextTask = "sentiment"
	TaskEmotion   TextTask = "emotion"
	TaskCrisis    TextTask = "crisis"
)

type textModelClient struct {
	baseURL string
	client  *http.Client
}

// textModel is the one shared handle to the remote model service.
// Acquired once on first use; a failed acquisition is cached so later calls
// degrade to unavailable instead of retrying the setup on every request.
var (
	textModel        *textModelClient
	textModelFailure Failure
	textModelOnce    sync.Once
)

func getTextModel() (*textModelClient, Failure) {
	textModelOnce.Do(func() {
		base := os.Getenv("MODEL_SERVICE_URL")
		if base == "" {
			log.Println("MODEL_SERVICE_URL not set, text predictors unavailable")
			textModelFailure = FailureNotConfigured
			return
		}
		textModel = &textModelClient{
			baseURL: strings.TrimRight(base, "/"),
			client:  &http.Client{Timeout: 15 * time.Second},
		}
	})
	return textModel, textModelFailure
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label     string             `json:"label"`
	Score     float64            `json:"score"`
	AllScores map[string]float64 `json:"all_scores,omitempty"`
}

func (m *textModelClient) classify(task TextTask, text string) (classifyResponse, error) {
	var out classifyResponse

	payloadBytes, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return out, err
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/classify/"+string(task), bytes.NewBuffer(payloadBytes))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, errors.New("model service returned status: " + resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, err
	}

	return out, nil
}

type remoteTextPredictor struct {
	task TextTask
}

// NewTextPredictor returns a predictor backed by the shared model service
// handle for the given task.
func NewTextPredictor(task TextTask) TextPredictor {
	return &remoteTextPredictor{task: task}
}

func (p *remoteTextPredictor) Predict(text string) Result {
	model, failure := getTextModel()
	if model == nil {
		return Unavailable(failure)
	}

	resp, err := model.classify(p.task, TruncateInput(text))
	if err != nil {
		log.Printf("Text predictor %s failed: %v", p.task, err)
		return Unavailable(FailureInference)
	}

	scores := resp.AllScores
	for k, v := range scores {
		scores[k] = clamp01(v)
	}

	return Result{
		Label:     resp.Label,
		Score:     clamp01(resp.Score),
		AllScores: scores,
		Available: true,
	}
}

// WarmUpTextModel pings the model service health endpoint so the first real
// request does not pay the cold-start cost. Safe to call from a cron job.
func WarmUpTextModel() error {
	model, failure := getTextModel()
	if model == nil {
		return errors.New("text model unavailable: " + string(failure))
	}

	resp, err := model.client.Get(model.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("model service health returned status: " + resp.Status)
	}
	return nil
}
