package models

import "encoding/json"

type RecommendResponse struct {
	BestIndex  int             `json:"best_index"`
	BestOption int             `json:"best_option"`
	Results    json.RawMessage `json:"results"`
}

type ErrorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}
