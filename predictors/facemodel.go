package predictors

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// The face landmarker runs as its own service since it carries heavyweight
// model weights. The handle is acquired once, same as the text model.
var (
	faceModel        *faceModelClient
	faceModelFailure Failure
	faceModelOnce    sync.Once
)

type faceModelClient struct {
	baseURL string
	client  *http.Client
}

func getFaceModel() (*faceModelClient, Failure) {
	faceModelOnce.Do(func() {
		base := os.Getenv("FACE_SERVICE_URL")
		if base == "" {
			log.Println("FACE_SERVICE_URL not set, face predictor unavailable")
			faceModelFailure = FailureNotConfigured
			return
		}
		faceModel = &faceModelClient{
			baseURL: strings.TrimRight(base, "/"),
			client:  &http.Client{Timeout: 20 * time.Second},
		}
	})
	return faceModel, faceModelFailure
}

type landmarkRequest struct {
	Image string `json:"image"`
}

type landmarkResponse struct {
	Faces []struct {
		Blendshapes map[string]float64 `json:"blendshapes"`
	} `json:"faces"`
}

type remoteFacePredictor struct{}

// NewFacePredictor returns a predictor backed by the face landmarker service.
func NewFacePredictor() FacePredictor {
	return &remoteFacePredictor{}
}

func (p *remoteFacePredictor) DetectBlendshapes(image []byte) FaceResult {
	model, failure := getFaceModel()
	if model == nil {
		return FaceResult{Failure: failure}
	}

	payload := landmarkRequest{Image: base64.StdEncoding.EncodeToString(image)}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Face predictor request build failed: %v", err)
		return FaceResult{Failure: FailureInference}
	}

	req, err := http.NewRequest(http.MethodPost, model.baseURL+"/landmarks", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return FaceResult{Failure: FailureInference}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := model.client.Do(req)
	if err != nil {
		log.Printf("Face predictor call failed: %v", err)
		return FaceResult{Failure: FailureInference}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Face predictor returned status: %s", resp.Status)
		return FaceResult{Failure: FailureInference}
	}

	var out landmarkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return FaceResult{Failure: FailureInference}
	}

	faces := make([]Blendshapes, 0, len(out.Faces))
	for _, f := range out.Faces {
		shapes := make(Blendshapes, len(f.Blendshapes))
		for k, v := range f.Blendshapes {
			shapes[k] = clamp01(v)
		}
		faces = append(faces, shapes)
	}

	return FaceResult{Faces: faces, Available: true}
}

// WarmUpFaceModel pings the face service health endpoint.
func WarmUpFaceModel() error {
	model, failure := getFaceModel()
	if model == nil {
		return errors.New("face model unavailable: " + string(failure))
	}

	resp, err := model.client.Get(model.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("face service health returned status: " + resp.Status)
	}
	return nil
}
