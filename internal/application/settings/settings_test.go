package settings

import (
	"testing"
	"time"
)

func TestFetchConfig_Timeout(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{seconds: 10, want: 10 * time.Second},
		{seconds: 1, want: time.Second},
		{seconds: 0, want: 0},
		{seconds: -3, want: 0},
	}
	for _, tt := range tests {
		if got := (FetchConfig{TimeoutSeconds: tt.seconds}).Timeout(); got != tt.want {
			t.Fatalf("Timeout(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}
