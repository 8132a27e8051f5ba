package frappe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDesignationPayload(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		valid  bool
		values []string
		labels []string
	}{
		{
			name:   "envelope with records",
			body:   `{"message":[{"name":"HR-001","title":"Manager"}]}`,
			valid:  true,
			values: []string{"HR-001"},
			labels: []string{"Manager"},
		},
		{
			name:   "bare array of strings and records",
			body:   `["Intern", {"name":"HR-002"}, {"name":"HR-003","title":""}]`,
			valid:  true,
			values: []string{"Intern", "HR-002", "HR-003"},
			labels: []string{"Intern", "HR-002", "HR-003"},
		},
		{
			name:   "raw values kept verbatim",
			body:   `{"message":[5, {"code":1}]}`,
			valid:  true,
			values: []string{"5", `{"code":1}`},
			labels: []string{"5", `{"code":1}`},
		},
		{
			name:   "title without name",
			body:   `{"message":[{"title":"Manager"}]}`,
			valid:  true,
			values: []string{`{"title":"Manager"}`},
			labels: []string{"Manager"},
		},
		{
			name:   "non-string title and name",
			body:   `{"message":[{"name":"HR-2","title":7},{"name":12}]}`,
			valid:  true,
			values: []string{"HR-2", "12"},
			labels: []string{"7", "12"},
		},
		{name: "number message", body: `{"message": 42}`, valid: false},
		{name: "falsy message falls back to object", body: `{"message": null}`, valid: false},
		{name: "plain string", body: `"HR-001"`, valid: false},
		{name: "empty list", body: `{"message": []}`, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := DecodeDesignationPayload([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, payload.Valid)

			var values, labels []string
			for _, e := range payload.Entries {
				values = append(values, e.Value())
				labels = append(labels, e.Label())
			}
			assert.Equal(t, tt.values, values)
			assert.Equal(t, tt.labels, labels)
		})
	}

	_, err := DecodeDesignationPayload([]byte(`<html>`))
	assert.Error(t, err)

	_, err = DecodeDesignationPayload([]byte(` null `))
	assert.ErrorIs(t, err, ErrNullBody)
}

func TestDecodeSubmitResult(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SubmitResult
	}{
		{"success", `{"message":{"success":true,"employee":"HR-EMP-00001"}}`, SubmitResult{Kind: ResultStructured, Success: true, Employee: "HR-EMP-00001"}},
		{"structured failure", `{"message":{"success":false}}`, SubmitResult{Kind: ResultStructured}},
		{"text", `{"message":"Duplicate employee"}`, SubmitResult{Kind: ResultText, Text: "Duplicate employee"}},
		{"non-string truthy", `{"message":[1]}`, SubmitResult{Kind: ResultStructured}},
		{"empty string", `{"message":""}`, SubmitResult{Kind: ResultMissing}},
		{"no message", `{"exc_type":"CSRFTokenError"}`, SubmitResult{Kind: ResultMissing}},
		{"not an object", `[]`, SubmitResult{Kind: ResultMissing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSubmitResult([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DecodeSubmitResult([]byte(`oops`))
	assert.Error(t, err)

	_, err = DecodeSubmitResult([]byte(`null`))
	assert.ErrorIs(t, err, ErrNullBody)
}
