// Package responsewriter wraps http.ResponseWriter so middleware can
// read the status code and body size after a handler has run. The
// logging and metrics layers both depend on these observations; the
// dashboard's own handlers never import this package directly.
package responsewriter

import "net/http"

// Writer observes the response written through it.
type Writer struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

// Wrap returns a Writer observing w.
func Wrap(w http.ResponseWriter) *Writer {
	return &Writer{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the status and forwards it. Only the first call
// counts, matching net/http semantics for repeated WriteHeader calls.
func (w *Writer) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

// Write forwards the body bytes and accumulates their count. A write
// without a prior WriteHeader records the implicit 200.
func (w *Writer) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the observed status code.
func (w *Writer) StatusCode() int {
	return w.status
}

// BytesWritten returns the number of body bytes written so far.
func (w *Writer) BytesWritten() int {
	return w.bytes
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *Writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
