package log

import (
	"io"

	"github.com/sasha-s/go-deadlock"
	"github.com/schollz/progressbar/v3"
)

// SafeWriter writes console log lines without corrupting an in-flight
// progress bar: the bar is cleared before the line and redrawn after it.
// It implements zapcore.WriteSyncer.
type SafeWriter struct {
	mutex *deadlock.Mutex
	out   io.Writer
	bar   *progressbar.ProgressBar
}

func NewSafeWriter(out io.Writer) *SafeWriter {
	return &SafeWriter{mutex: &deadlock.Mutex{}, out: out}
}

// Attach makes all following writes clear and redraw the bar.
func (w *SafeWriter) Attach(bar *progressbar.ProgressBar) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.bar = bar
}

// Detach stops the clear/redraw dance, eg. when the bar is finished.
func (w *SafeWriter) Detach() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.bar = nil
}

func (w *SafeWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.bar != nil {
		if err := w.bar.Clear(); err != nil {
			return 0, err
		}
	}

	n, err = w.out.Write(p)

	if w.bar != nil {
		if err := w.bar.RenderBlank(); err != nil {
			return n, err
		}
	}

	return n, err
}

func (w *SafeWriter) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if s, ok := w.out.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
