package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputConstantsUniqueness(t *testing.T) {
	outputs := []string{OutputConky, OutputPlain, OutputJSON, OutputCSV}

	seen := make(map[string]bool)
	for _, output := range outputs {
		assert.False(t, seen[output], "Output format %s is duplicated", output)
		seen[output] = true
	}
}

func TestDateLayoutIsCanonical(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", d.Format(DateLayout))
}
