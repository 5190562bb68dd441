package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"aitrustyou/outfit-recommender/internal/models"
)

const (
	maxResponseSize = 10 << 20
	maxErrorSnippet = 512
)

type RecommenderService interface {
	Recommend(ctx context.Context, selection *models.Selection) (*models.Recommendation, error)
}

type recommenderService struct {
	client          *http.Client
	endpoint        string
	maxResponseSize int64
}

func NewRecommenderService(endpoint string, timeout time.Duration) RecommenderService {
	return NewRecommenderServiceWithClient(endpoint, &http.Client{Timeout: timeout})
}

func NewRecommenderServiceWithClient(endpoint string, client *http.Client) RecommenderService {
	if client == nil {
		client = http.DefaultClient
	}
	return &recommenderService{
		client:          client,
		endpoint:        endpoint,
		maxResponseSize: maxResponseSize,
	}
}

// Recommend uploads the selection and decodes the backend's answer. An
// incomplete selection fails before anything is sent.
func (s *recommenderService) Recommend(ctx context.Context, selection *models.Selection) (*models.Recommendation, error) {
	if !selection.Complete() {
		return nil, &RecommendError{Kind: KindValidation, Err: ErrMissingGarments}
	}

	body, contentType, err := BuildMultipartBody(selection)
	if err != nil {
		return nil, &RecommendError{Kind: KindTransport, Err: fmt.Errorf("failed to build request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return nil, &RecommendError{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log.Printf("🚀 [%s] Sending top, bottom and %d shoes to %s", requestID, len(selection.Shoes), s.endpoint)
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("❌ [%s] Request failed after %s: %v", requestID, time.Since(start), err)
		return nil, &RecommendError{Kind: KindTransport, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	// One byte past the limit tells a full body from a cut-off one.
	payload, err := io.ReadAll(io.LimitReader(resp.Body, s.maxResponseSize+1))
	if err != nil {
		log.Printf("❌ [%s] Failed to read response: %v", requestID, err)
		return nil, &RecommendError{Kind: KindTransport, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ [%s] Backend returned %d in %s", requestID, resp.StatusCode, time.Since(start))
		return nil, &RecommendError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Body:       snippet(payload),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	if int64(len(payload)) > s.maxResponseSize {
		log.Printf("❌ [%s] Response exceeds %d bytes", requestID, s.maxResponseSize)
		return nil, &RecommendError{
			Kind: KindDecode,
			Err:  fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, s.maxResponseSize),
		}
	}

	recommendation, err := DecodeRecommendation(payload)
	if err != nil {
		log.Printf("❌ [%s] Invalid response: %v", requestID, err)
		return nil, err
	}

	log.Printf("✅ [%s] Best option: shoe #%d (%s)", requestID, recommendation.BestOption(), time.Since(start))
	log.Printf("📊 [%s] Results: %s", requestID, snippet(recommendation.Results))

	return recommendation, nil
}

// DecodeRecommendation parses a backend response body. Malformed JSON is a
// KindDecode error; well-formed JSON without an integer best_index or a
// results field is a KindContract error.
func DecodeRecommendation(payload []byte) (*models.Recommendation, error) {
	if !json.Valid(payload) {
		return nil, &RecommendError{Kind: KindDecode, Err: fmt.Errorf("response is not valid JSON: %q", snippet(payload))}
	}

	var raw models.BackendResponse
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &RecommendError{Kind: KindContract, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	if raw.BestIndex == nil {
		return nil, &RecommendError{Kind: KindContract, Err: fmt.Errorf("%w: best_index", ErrMissingField)}
	}
	if len(raw.Results) == 0 {
		return nil, &RecommendError{Kind: KindContract, Err: fmt.Errorf("%w: results", ErrMissingField)}
	}

	return &models.Recommendation{
		BestIndex: *raw.BestIndex,
		Results:   raw.Results,
	}, nil
}

func snippet(payload []byte) string {
	text := strings.TrimSpace(string(payload))
	if len(text) > maxErrorSnippet {
		return text[:maxErrorSnippet] + "..."
	}
	return text
}
