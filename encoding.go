package textbuf

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// badText replaces the contents in String when they are not valid UTF-8.
const badText = "%!(BADUTF8)"

var json = jsoniter.Config{
	EscapeHTML: false,
}.Froze()

var _ zerolog.LogObjectMarshaler = (*Buffer)(nil)

// String returns a copy of the buffered text, or "%!(BADUTF8)" if the
// contents are not valid UTF-8.
func (b *Buffer) String() string {
	s, ok := b.Text()
	if !ok {
		return badText
	}
	return strings.Clone(s)
}

// WriteTo writes the buffered text to w in a single call and resets the
// buffer once all of it was written. On error the contents are kept.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.n == 0 {
		return 0, nil
	}
	n, err := w.Write(b.buf[:b.n])
	if n < 0 || n > b.n {
		n = 0
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err != nil {
		return int64(n), err
	}
	if n != b.n {
		return int64(n), io.ErrShortWrite
	}
	b.n = 0
	return int64(n), nil
}

// MarshalJSON encodes the buffered text as a JSON string.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	s, ok := b.Text()
	if !ok {
		return nil, ErrInvalidUTF8
	}
	return json.Marshal(s)
}

// MarshalZerologObject logs the buffer length, capacity and text.
func (b *Buffer) MarshalZerologObject(e *zerolog.Event) {
	e.Int("len", b.n).
		Int("cap", len(b.buf)).
		Str("text", b.String())
}
