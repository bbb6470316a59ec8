package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_PlainTextForNonTerminal(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf)

	p.Title("Heading")
	p.Line("body")
	p.Blank()
	p.Success("done")
	p.Failure("broken")

	want := "Heading\n=======\nbody\n\n✓ done\n✗ broken\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
	require.NoError(t, p.Err())
}

func TestPrinter_Linef(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf).Linef("Condition %d: %v", 1, true)

	assert.Equal(t, "Condition 1: true\n", buf.String())
}

func TestPrinter_InfoAndStep(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf)

	p.Info("Info message")
	p.Step("Step message")

	assert.Contains(t, buf.String(), "Info message")
	assert.Contains(t, buf.String(), "   Step message")
}

func TestPrinter_Verbose(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    bool
	}{
		{"verbose off", false, false},
		{"verbose on", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			NewPrinter(buf, WithVerbose(tt.verbose)).Verbose("debug detail")

			assert.Equal(t, tt.want, strings.Contains(buf.String(), "debug detail"))
		})
	}
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestPrinter_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w)

	p.Line("first")
	p.Line("second")

	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), "disk full")
	assert.Equal(t, 1, w.calls)
}
