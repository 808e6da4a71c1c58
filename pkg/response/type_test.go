package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"mcal/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("unexpected date JSON: %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00"`},
		{"end of day", time.Date(2025, 2, 28, 23, 59, 59, 999999000, time.UTC), `"2025-02-28T23:59:59.999999"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DateTime: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
