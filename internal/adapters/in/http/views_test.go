package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSlotName(t *testing.T) {
	tests := []struct {
		name, aisle, shelf string
	}{
		{"B-03", "B", "03"},
		{"C", "C", "01"},
		{"-07", "A", "07"},
		{"D-", "D", "01"},
		{"", "A", "01"},
		{"E-1-2", "E", "1-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aisle, shelf := splitSlotName(tt.name)
			assert.Equal(t, tt.aisle, aisle)
			assert.Equal(t, tt.shelf, shelf)
		})
	}
}
