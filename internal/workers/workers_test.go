package workers

import (
	"os"
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	// Save and restore original environment
	originalEnv := os.Getenv("PHOTOSCAN_WORKERS")
	defer func() {
		if originalEnv != "" {
			os.Setenv("PHOTOSCAN_WORKERS", originalEnv)
		} else {
			os.Unsetenv("PHOTOSCAN_WORKERS")
		}
	}()

	// Clear any existing override
	os.Unsetenv("PHOTOSCAN_WORKERS")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
		{
			name:       "I/O-bound task (2.0x multiplier)",
			multiplier: 2.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU * 2,
		},
		{
			name:       "with limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "zero multiplier floors at one",
			multiplier: 0,
			limit:      0,
			minExpect:  1,
			maxExpect:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < tt.minExpect || got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, want between %d and %d",
					tt.multiplier, tt.limit, got, tt.minExpect, tt.maxExpect)
			}
		})
	}
}

func TestCountEnvOverride(t *testing.T) {
	originalEnv := os.Getenv("PHOTOSCAN_WORKERS")
	defer func() {
		if originalEnv != "" {
			os.Setenv("PHOTOSCAN_WORKERS", originalEnv)
		} else {
			os.Unsetenv("PHOTOSCAN_WORKERS")
		}
	}()

	tests := []struct {
		name  string
		env   string
		limit int
		want  int
	}{
		{
			name:  "override respected",
			env:   "5",
			limit: 0,
			want:  5,
		},
		{
			name:  "override capped by limit",
			env:   "50",
			limit: 8,
			want:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("PHOTOSCAN_WORKERS", tt.env)
			if got := Count(2.0, tt.limit); got != tt.want {
				t.Errorf("Count with PHOTOSCAN_WORKERS=%s = %d, want %d", tt.env, got, tt.want)
			}
		})
	}

	t.Run("invalid override ignored", func(t *testing.T) {
		os.Setenv("PHOTOSCAN_WORKERS", "not-a-number")
		got := Count(1.0, 0)
		if got < 1 {
			t.Errorf("Count with invalid override = %d, want >= 1", got)
		}
	})
}

func TestForIO(t *testing.T) {
	os.Unsetenv("PHOTOSCAN_WORKERS")

	got := ForIO(8)
	if got < 1 || got > 8 {
		t.Errorf("ForIO(8) = %d, want between 1 and 8", got)
	}
}
