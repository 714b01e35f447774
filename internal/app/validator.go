// internal/app/validator.go
package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// ValidateResponse checks the shape of a raw homework API response and extracts
// the homework list and the cursor for the next request.
// Records are only checked to be objects; their fields are validated by FormatStatus.
func ValidateResponse(raw json.RawMessage) (homework.Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return homework.Envelope{}, homework.NewError(homework.KindShape, "response is not a JSON object", err)
	}

	rawHomeworks, ok := fields[keyHomeworks]
	if !ok {
		return homework.Envelope{}, homework.NewError(homework.KindMissingKey, fmt.Sprintf("response has no %q key", keyHomeworks), nil)
	}
	homeworks, err := decodeHomeworks(rawHomeworks)
	if err != nil {
		return homework.Envelope{}, err
	}

	rawDate, ok := fields[keyCurrentDate]
	if !ok {
		return homework.Envelope{}, homework.NewError(homework.KindMissingKey, fmt.Sprintf("response has no %q key", keyCurrentDate), nil)
	}
	var currentDate int64
	if isNull(rawDate) {
		return homework.Envelope{}, homework.NewError(homework.KindShape, fmt.Sprintf("%q is null", keyCurrentDate), nil)
	}
	if err := json.Unmarshal(rawDate, &currentDate); err != nil {
		return homework.Envelope{}, homework.NewError(homework.KindShape, fmt.Sprintf("%q is not an integer", keyCurrentDate), err)
	}

	return homework.Envelope{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

func decodeHomeworks(raw json.RawMessage) ([]homework.Homework, error) {
	var items []json.RawMessage
	if !startsWith(raw, '[') {
		return nil, homework.NewError(homework.KindListShape, fmt.Sprintf("%q is not a list", keyHomeworks), nil)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, homework.NewError(homework.KindListShape, fmt.Sprintf("%q is not a list", keyHomeworks), err)
	}

	homeworks := make([]homework.Homework, 0, len(items))
	for i, item := range items {
		if !startsWith(item, '{') {
			return nil, homework.NewError(homework.KindListShape, fmt.Sprintf("%s[%d] is not an object", keyHomeworks, i), nil)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, homework.NewError(homework.KindListShape, fmt.Sprintf("%s[%d] is not an object", keyHomeworks, i), err)
		}
		homeworks = append(homeworks, homework.NewHomework(fields))
	}
	return homeworks, nil
}

func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
