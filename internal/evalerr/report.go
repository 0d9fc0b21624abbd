// Package evalerr defines the evaluator's two non-residual error kinds
// (host errors from native functions, and structural errors from
// malformed input trees) as a single structured Report type, following
// the teacher's errors.Report/ReportError split: a stable Code plus a
// JSON-serializable Data bag, wrapped so callers can errors.As it back
// out of a generic error return.
package evalerr

import (
	"encoding/json"
	"errors"
)

// Report is the canonical structured error payload for this evaluator.
type Report struct {
	Schema  string         `json:"schema"` // always "evalcore.error/v1"
	Code    string         `json:"code"`
	Kind    string         `json:"kind"` // "host" or "structural"
	Header  string         `json:"header,omitempty"`
	Message string         `json:"message"`
	Cost    int            `json:"cost"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary error-handling code.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown evaluator error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps r as an error. Returns nil if r is nil.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report deterministically.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		b, err := json.Marshal(r)
		return string(b), err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	return string(b), err
}
