package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindTransport  ErrorKind = "transport"
	KindStatus     ErrorKind = "status"
	KindDecode     ErrorKind = "decode"
	KindContract   ErrorKind = "contract"
)

var (
	ErrMissingGarments  = errors.New("top, bottom and at least one shoe are required")
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnreadableFile   = errors.New("unreadable file")
	ErrMissingField     = errors.New("missing field in response")
	ErrResponseTooLarge = errors.New("response too large")
)

// RecommendError describes why a recommendation could not be produced.
type RecommendError struct {
	Kind ErrorKind

	// Field and Filename identify the offending garment for validation errors.
	Field    string
	Filename string

	// Limit is the byte limit that was exceeded, for ErrFileTooLarge.
	Limit int64

	// StatusCode and Body are set for KindStatus.
	StatusCode int
	Body       string

	Err error
}

func (e *RecommendError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s error: backend returned %d: %v", e.Kind, e.StatusCode, e.Err)
	case e.Filename != "":
		return fmt.Sprintf("%s error: %s %q: %v", e.Kind, e.Field, e.Filename, e.Err)
	default:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
}

func (e *RecommendError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *RecommendError anywhere in err's chain,
// or "" when there is none.
func KindOf(err error) ErrorKind {
	var re *RecommendError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
