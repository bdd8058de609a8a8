package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-5, "0"},
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{1000, "1000"},
		{123456, "123456"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		assert.Equal(t, tt.want, buf.String(), "n=%d", tt.n)
	}
}

func TestWriteCursor(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 0, 0)
	writeCursorPos(w, 9, 4)
	writeCursorForward(w, 3)
	writeCursorForward(w, 0)
	w.Flush()
	assert.Equal(t, "\x1b[1;1H\x1b[5;10H\x1b[3C", buf.String())
}

func TestColorMode_String(t *testing.T) {
	assert.Equal(t, "256", ColorMode256.String())
	assert.Equal(t, "truecolor", ColorModeTrueColor.String())
}
