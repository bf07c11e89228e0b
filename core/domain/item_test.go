package domain

import "testing"

func TestAuthor_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		author   Author
		expected bool
	}{
		{
			name:     "zero value",
			author:   Author{},
			expected: true,
		},
		{
			name:     "name only",
			author:   Author{Name: "Jane Doe"},
			expected: false,
		},
		{
			name:     "email only",
			author:   Author{Email: "jane@example.com"},
			expected: false,
		},
		{
			name:     "uri only",
			author:   Author{URI: "https://example.com/~jane"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.author.IsEmpty()
			if result != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", result, tt.expected)
			}
		})
	}
}
