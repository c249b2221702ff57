package models

import "testing"

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		input string
		valid bool
		days  int
	}{
		{"1d", true, 1},
		{"7d", true, 7},
		{"30d", true, 30},
		{"90d", true, 90},
		{"1y", true, 365},
		{"", false, 0},
		{"5weeks", false, 0},
		{"7D", false, 0},
		{"365", false, 0},
	}

	for _, tt := range tests {
		tf, ok := ParseTimeframe(tt.input)
		if ok != tt.valid {
			t.Errorf("ParseTimeframe(%q) valid = %v, want %v", tt.input, ok, tt.valid)
			continue
		}
		if tt.valid && tf.Days() != tt.days {
			t.Errorf("ParseTimeframe(%q).Days() = %d, want %d", tt.input, tf.Days(), tt.days)
		}
	}
}
