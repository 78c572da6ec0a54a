package draw

import (
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

// chunkSize caps a single write so each piece of a frame fits one TCP segment
// after SSH framing.
const chunkSize = 1400

// FrameWriter queues the escape sequences and text of one frame and sends
// them to the terminal in chunkSize pieces on Flush.
type FrameWriter struct {
	w   io.Writer
	buf []byte

	// Added to every cursor move, for centering the canvas.
	col, row int
}

// NewFrameWriter returns a FrameWriter with no offset.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w, buf: make([]byte, 0, 8192)}
}

// SetOffset shifts every later cursor move by col columns and row rows.
func (f *FrameWriter) SetOffset(col, row int) {
	f.col, f.row = col, row
}

// MoveCursor queues a move to the 1-based canvas position col,row.
func (f *FrameWriter) MoveCursor(col, row int) {
	f.buf = append(f.buf, "\033["...)
	f.buf = strconv.AppendInt(f.buf, int64(row+f.row), 10)
	f.buf = append(f.buf, ';')
	f.buf = strconv.AppendInt(f.buf, int64(col+f.col), 10)
	f.buf = append(f.buf, 'H')
}

func (f *FrameWriter) WriteString(s string) {
	f.buf = append(f.buf, s...)
}

func (f *FrameWriter) WriteRune(r rune) {
	f.buf = utf8.AppendRune(f.buf, r)
}

// WriteAt queues s at the 1-based canvas position col,row.
func (f *FrameWriter) WriteAt(col, row int, s string) {
	f.MoveCursor(col, row)
	f.WriteString(s)
}

// Len returns the number of queued bytes.
func (f *FrameWriter) Len() int {
	return len(f.buf)
}

// Flush writes the queued frame. The queue is emptied even when a write fails.
func (f *FrameWriter) Flush() error {
	defer func() { f.buf = f.buf[:0] }()
	for data := f.buf; len(data) > 0; {
		n := min(len(data), chunkSize)
		if _, err := f.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the terminal attached to stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
