package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSinks(t *testing.T) {
	var out, errs bytes.Buffer
	l := New(&out, &errs, 1)

	l.Printf("loaded %d numbers", 3)
	l.Error("failed: %s", "boom")
	l.Verbose(1, "detail %d", 1)
	l.Verbose(2, "noise")

	assert.Equal(t, "loaded 3 numbers\ndetail 1\n", out.String())
	assert.Equal(t, "failed: boom\n", errs.String())
	assert.Equal(t, 1, l.Verbosity())
	assert.Same(t, &out, l.Writer())
}
