// internal/domain/homework/homework.go
package homework

import (
	"bytes"
	"context"
	"encoding/json"
)

const (
	fieldName            = "homework_name"
	fieldStatus          = "status"
	fieldReviewerComment = "reviewer_comment"
)

// Homework is a single record from the "homeworks" list.
// Fields are kept raw and read on demand, so server-defined extras of any type are ignored.
type Homework struct {
	fields map[string]json.RawMessage
}

// NewHomework wraps the decoded fields of one record.
func NewHomework(fields map[string]json.RawMessage) Homework {
	return Homework{fields: fields}
}

// Name returns homework_name; ok is false when it is absent or not a string.
func (h Homework) Name() (string, bool) {
	return h.stringField(fieldName)
}

// Status returns the status; ok is false when it is absent or not a string.
func (h Homework) Status() (Status, bool) {
	s, ok := h.stringField(fieldStatus)
	return Status(s), ok
}

// ReviewerComment is best effort, used for logging only.
func (h Homework) ReviewerComment() string {
	s, _ := h.stringField(fieldReviewerComment)
	return s
}

func (h Homework) stringField(key string) (string, bool) {
	raw, ok := h.fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Envelope is the validated top-level response of the homework API.
type Envelope struct {
	Homeworks   []Homework
	CurrentDate int64
}

// StatusAPI fetches the raw homework status response for the window starting at fromDate.
type StatusAPI interface {
	Fetch(ctx context.Context, fromDate int64) (json.RawMessage, error)
}
