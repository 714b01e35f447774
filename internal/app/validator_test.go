package app

import (
	"encoding/json"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"homeworks": [
			{"id": 124, "status": "rejected", "homework_name": "user__hw_python_oop.zip",
			 "reviewer_comment": "Код не по PEP8", "date_updated": "2020-02-13T16:42:47Z", "lesson_name": "Итоговый проект"},
			{"id": 123, "status": "approved", "homework_name": "user__hw_test.zip"}
		],
		"current_date": 1581604970
	}`)

	envelope, err := ValidateResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(1581604970), envelope.CurrentDate)
	require.Len(t, envelope.Homeworks, 2)
	name, ok := envelope.Homeworks[0].Name()
	assert.True(t, ok)
	assert.Equal(t, "user__hw_python_oop.zip", name)
	status, ok := envelope.Homeworks[0].Status()
	assert.True(t, ok)
	assert.Equal(t, homework.StatusRejected, status)
	assert.Equal(t, "Код не по PEP8", envelope.Homeworks[0].ReviewerComment())
}

func TestValidateResponse_IgnoresOddlyTypedExtraFields(t *testing.T) {
	raw := json.RawMessage(`{
		"homeworks": [
			{"homework_name": "hw1", "status": "approved", "id": "42", "reviewer_comment": {"text": "ok"}},
			{"homework_name": 5, "status": 7, "date_updated": false}
		],
		"current_date": 1
	}`)

	envelope, err := ValidateResponse(raw)
	require.NoError(t, err)
	require.Len(t, envelope.Homeworks, 2)

	assert.Empty(t, envelope.Homeworks[0].ReviewerComment())
	_, ok := envelope.Homeworks[1].Name()
	assert.False(t, ok)
	_, ok = envelope.Homeworks[1].Status()
	assert.False(t, ok)
}

func TestValidateResponse_EmptyList(t *testing.T) {
	envelope, err := ValidateResponse(json.RawMessage(`{"homeworks": [], "current_date": 42}`))
	require.NoError(t, err)
	assert.Empty(t, envelope.Homeworks)
	assert.Equal(t, int64(42), envelope.CurrentDate)
}

func TestValidateResponse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "array envelope", raw: `[{"homeworks": []}]`, want: homework.ErrShape},
		{name: "null envelope", raw: `null`, want: homework.ErrShape},
		{name: "string envelope", raw: `"ok"`, want: homework.ErrShape},
		{name: "no homeworks", raw: `{"current_date": 1}`, want: homework.ErrMissingKey},
		{name: "homeworks is object", raw: `{"homeworks": {"a": 1}, "current_date": 1}`, want: homework.ErrListShape},
		{name: "homeworks is null", raw: `{"homeworks": null, "current_date": 1}`, want: homework.ErrListShape},
		{name: "element is not object", raw: `{"homeworks": ["hw1"], "current_date": 1}`, want: homework.ErrListShape},
		{name: "no current_date", raw: `{"homeworks": []}`, want: homework.ErrMissingKey},
		{name: "current_date is string", raw: `{"homeworks": [], "current_date": "today"}`, want: homework.ErrShape},
		{name: "current_date is null", raw: `{"homeworks": [], "current_date": null}`, want: homework.ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateResponse(json.RawMessage(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
