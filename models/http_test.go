package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    BookRequest
		wantErr bool
	}{
		{
			name: "numeric year",
			body: `{"id":"7","title":"Dune","author":"Frank Herbert","year":1965}`,
			want: BookRequest{ID: "7", Title: "Dune", Author: "Frank Herbert", Year: 1965},
		},
		{
			name: "year as form text",
			body: `{"title":"Dune","author":"Frank Herbert","year":"1965"}`,
			want: BookRequest{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		},
		{
			name: "year text with spaces",
			body: `{"title":"Dune","year":" 1965 "}`,
			want: BookRequest{Title: "Dune", Year: 1965},
		},
		{
			name: "empty year text",
			body: `{"title":"Dune","year":""}`,
			want: BookRequest{Title: "Dune"},
		},
		{
			name: "null year",
			body: `{"title":"Dune","year":null}`,
			want: BookRequest{Title: "Dune"},
		},
		{
			name: "missing year",
			body: `{"title":"Dune"}`,
			want: BookRequest{Title: "Dune"},
		},
		{name: "year not a number", body: `{"year":"sixties"}`, wantErr: true},
		{name: "fractional year", body: `{"year":19.65}`, wantErr: true},
		{name: "year as object", body: `{"year":{}}`, wantErr: true},
		{name: "broken body", body: `{"title":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got BookRequest
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
