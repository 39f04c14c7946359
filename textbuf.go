package textbuf

import (
	"errors"
	"io"
	"unicode/utf8"
	"unsafe"
)

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
)

var (
	// ErrOverflow is returned when a write does not fit in the remaining capacity.
	// Nothing is written in that case.
	ErrOverflow = errors.New("textbuf: write exceeds buffer capacity")

	// ErrInvalidUTF8 is returned when a fragment, or the buffered contents,
	// are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("textbuf: invalid utf-8")
)

// Buffer is a fixed-capacity, append-only text buffer.
//
// The written prefix is always valid UTF-8: every write is checked and copied
// whole or not at all. Capacity is fixed when the buffer is created and never
// grows. The zero value is an empty buffer with capacity 0.
//
// A Buffer is not safe for concurrent use. Do not copy a non-zero Buffer:
// copies share storage but not the cursor. Pass &b instead.
type Buffer struct {
	buf []byte
	n   int
}

// New allocates a buffer able to hold exactly capacity bytes.
// A negative capacity is treated as 0.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Make returns a buffer backed by storage. The capacity is len(storage) and
// the buffer takes ownership of it: the caller must not touch storage while
// the buffer is in use.
//
// Backing the buffer with a local array keeps it off the heap when the
// buffer does not escape:
//
//	var scratch [64]byte
//	b := textbuf.Make(scratch[:])
//	fmt.Fprintf(&b, "%d", 12)
//
// Methods have pointer receivers, so pass &b to writers and formatters;
// fmt.Println(b) prints the struct, not the text.
func Make(storage []byte) Buffer {
	return Buffer{buf: storage[:len(storage):len(storage)]}
}

// Write appends p to the buffer. p must be valid UTF-8 and fit in the
// remaining capacity, otherwise nothing is written and ErrOverflow or
// ErrInvalidUTF8 is returned.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.n + len(p)
	if end > len(b.buf) {
		return 0, ErrOverflow
	}
	if !utf8.Valid(p) {
		return 0, ErrInvalidUTF8
	}
	copy(b.buf[b.n:end], p)
	b.n = end
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (b *Buffer) WriteString(s string) (int, error) {
	end := b.n + len(s)
	if end > len(b.buf) {
		return 0, ErrOverflow
	}
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}
	copy(b.buf[b.n:end], s)
	b.n = end
	return len(s), nil
}

// WriteByte appends a single ASCII byte.
func (b *Buffer) WriteByte(c byte) error {
	if b.n == len(b.buf) {
		return ErrOverflow
	}
	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// WriteRune appends the UTF-8 encoding of r. Invalid runes are written as
// utf8.RuneError.
func (b *Buffer) WriteRune(r rune) (int, error) {
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	if b.n+size > len(b.buf) {
		return 0, ErrOverflow
	}
	utf8.EncodeRune(b.buf[b.n:], r)
	b.n += size
	return size, nil
}

// Text returns the buffered text. The contents are validated on every call;
// if they are not valid UTF-8 Text returns "", false.
//
// The returned string shares memory with the buffer and changes with it: it
// is only valid until the next write, reset or mapping. Do not store it, send
// it elsewhere or use it as a map key; use String to keep the text.
func (b *Buffer) Text() (string, bool) {
	p := b.buf[:b.n]
	if !utf8.Valid(p) {
		return "", false
	}
	return unsafe.String(unsafe.SliceData(p), len(p)), true
}

// Bytes returns the buffered bytes without validation.
// The slice aliases the buffer storage and must not be modified.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n:b.n] }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Available returns how many more bytes can be written.
func (b *Buffer) Available() int { return len(b.buf) - b.n }

// Empty reports whether nothing has been written since creation or the last reset.
func (b *Buffer) Empty() bool { return b.n == 0 }

// Full reports whether no more bytes can be written.
func (b *Buffer) Full() bool { return b.Available() == 0 }

// Reset empties the buffer. The storage is not cleared.
func (b *Buffer) Reset() { b.n = 0 }
