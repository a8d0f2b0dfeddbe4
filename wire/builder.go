// Package wire renders requests, responses and multipart section headers
// into the exact bytes written to a connection.
package wire

import (
	"io"
	"net"
	"strings"
)

// Builder is a lazily concatenated sequence of byte chunks. Chunks are
// only flattened when Bytes or String is called.
type Builder struct {
	chunks [][]byte
	size   int
}

func (b *Builder) WriteString(s string) {
	if s == "" {
		return
	}
	b.chunks = append(b.chunks, []byte(s))
	b.size += len(s)
}

func (b *Builder) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	chunk := make([]byte, len(p))
	copy(chunk, p)
	b.chunks = append(b.chunks, chunk)
	b.size += len(p)
	return len(p), nil
}

// Append adds every chunk of other to b.
func (b *Builder) Append(other *Builder) {
	b.chunks = append(b.chunks, other.chunks...)
	b.size += other.size
}

func (b *Builder) Len() int {
	return b.size
}

func (b *Builder) Bytes() []byte {
	buf := make([]byte, 0, b.size)
	for _, c := range b.chunks {
		buf = append(buf, c...)
	}
	return buf
}

func (b *Builder) String() string {
	return string(b.Bytes())
}

// WriteTo writes every chunk to w, using vectored writes when w supports
// them.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	bufs := make(net.Buffers, len(b.chunks))
	copy(bufs, b.chunks)
	return bufs.WriteTo(w)
}

// Display strips every carriage return, leaving bare line feeds.
func Display(b *Builder) string {
	return strings.ReplaceAll(b.String(), "\r", "")
}
