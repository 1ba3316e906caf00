package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"empty", "", "(empty)"},
		{"short fully masked", "abc", "***"},
		{"boundary fully masked", "12345678", "********"},
		{"long keeps edges", "sk-proj-abcdef123456", "sk-p…3456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactKey(tt.key))
		})
	}
}
