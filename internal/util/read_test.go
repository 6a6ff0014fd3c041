package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadAllLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		want    string
		wantErr error
	}{
		{name: "under limit", input: "abc", limit: 4, want: "abc"},
		{name: "exactly at limit", input: "abcd", limit: 4, want: "abcd"},
		{name: "one byte over", input: "abcde", limit: 4, wantErr: ErrTooLarge},
		{name: "far over", input: strings.Repeat("x", 1024), limit: 16, wantErr: ErrTooLarge},
		{name: "empty", input: "", limit: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAllLimit(strings.NewReader(tt.input), tt.limit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("expected no data on error, got %d bytes", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("ReadAllLimit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
