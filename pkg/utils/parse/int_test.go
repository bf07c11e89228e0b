package parse

import "testing"

func TestIntOrZero(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"12", 12},
		{" 5\n", 5},
		{"0", 0},
		{"", 0},
		{"many", 0},
		{"-3", 0},
		{"4.5", 0},
	}

	for _, tt := range tests {
		if got := IntOrZero(tt.input); got != tt.expected {
			t.Errorf("IntOrZero(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
