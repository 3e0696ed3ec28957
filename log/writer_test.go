package log

import (
	"bytes"
	"io"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"

	"github.com/cliglue/cliglue/internal/ioutil"
)

func TestSafeWriterPassthrough(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	w := NewSafeWriter(&out)

	n, err := w.Write([]byte("hello\n"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "hello\n", out.String())
}

func TestSafeWriterWithBar(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	w := NewSafeWriter(&out)

	// Bar renders to its own writer, log lines must stay intact
	bar := progressbar.NewOptions(10, progressbar.OptionSetWriter(io.Discard))
	w.Attach(bar)
	assert.NoError(t, bar.Add(3))

	_, err := w.Write([]byte("progress is safe\n"))
	assert.NoError(t, err)
	assert.Equal(t, "progress is safe\n", out.String())

	w.Detach()
	_, err = w.Write([]byte("after detach\n"))
	assert.NoError(t, err)
	assert.Equal(t, "progress is safe\nafter detach\n", out.String())
}

func TestSafeWriterSync(t *testing.T) {
	t.Parallel()
	buffer := ioutil.NewAtomicWriter()
	w := NewSafeWriter(buffer)

	_, err := w.Write([]byte("buffered\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Sync())
	assert.Equal(t, "buffered\n", buffer.String())
}
