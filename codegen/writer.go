package codegen

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source text
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written text.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the written text.
func (w *Writer) String() string {
	return w.buf.String()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Line writes one line indented by indent tabs.
func (w *Writer) Line(indent int, format string, args ...any) {
	w.buf.WriteString(strings.Repeat("\t", indent))
	if len(args) > 0 {
		fmt.Fprintf(w.buf, format, args...)
	} else {
		w.buf.WriteString(format)
	}
	w.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// Comment writes a line prefixed with "//" when commented is set.
func (w *Writer) Comment(commented bool, indent int, format string, args ...any) {
	if commented {
		format = "//" + format
	}
	w.Line(indent, format, args...)
}
