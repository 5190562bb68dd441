package models

import "encoding/json"

type Recommendation struct {
	BestIndex int
	Results   json.RawMessage
}

// BestOption is the 1-based number shown to the user.
func (r *Recommendation) BestOption() int {
	return r.BestIndex + 1
}

// BackendResponse is the JSON document returned by the recommendation service.
// Pointers and raw messages let the decoder tell a missing field from a zero value.
type BackendResponse struct {
	BestIndex *int            `json:"best_index"`
	Results   json.RawMessage `json:"results"`
}
