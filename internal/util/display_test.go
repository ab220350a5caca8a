package util

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, GetDisplayWidth("MAD"))
	assert.Equal(t, 4, GetDisplayWidth("日本"))
	assert.Equal(t, 0, GetDisplayWidth(""))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "AP  ", PadRight("AP", 4))
	assert.Equal(t, "SEC", PadRight("SEC", 2))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
