// Package textbuf provides a fixed-capacity text buffer for building strings
// without growing memory. Writes are all-or-nothing: a fragment that does not
// fit, or is not valid UTF-8, is rejected and the buffer keeps its previous
// contents, so the written prefix is always readable as text.
package textbuf
