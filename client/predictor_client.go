package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// PredictorClient talks to the external category-model sidecar. The model is
// trained and served elsewhere; this client only asks it for a label and must
// never be assumed to be running. Responses are memoized per normalized input
// since menus repeat the same item names across receipts.
type PredictorClient struct {
	baseURL    string
	httpClient *http.Client
	labelCache *cache.Cache
}

// maxCacheKeyLen keeps whole-document predictions out of the cache.
const maxCacheKeyLen = 256

func NewPredictorClient(baseURL string) *PredictorClient {
	log.Printf("Label predictor configured at %s", baseURL)

	return &PredictorClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		labelCache: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// PredictLabel asks the sidecar to classify a short string. An empty label
// means the model had no opinion; the caller falls back to its rules either
// way, so errors here are never fatal.
func (p *PredictorClient) PredictLabel(text string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	cacheable := len(key) > 0 && len(key) <= maxCacheKeyLen

	if cacheable {
		if v, ok := p.labelCache.Get(key); ok {
			return v.(string), nil
		}
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal predictor request: %w", err)
	}

	resp, err := p.httpClient.Post(p.baseURL+"/predict/category", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to call label predictor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("label predictor returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode predictor response: %w", err)
	}

	if cacheable {
		p.labelCache.Set(key, result.Label, cache.DefaultExpiration)
	}

	return result.Label, nil
}
