package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all writers, unlike io.MultiWriter it does not stop
// at the first failing one. Errors of all failing writers are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		err = multierr.Append(err, werr)
		n += written
	}
	return n, err
}
