package http

import (
	"errors"
	"fmt"
	"io"
)

// DefaultReadBufferSize bounds the single read a Decoder performs.
const DefaultReadBufferSize = 8192

// Decoder reads one HTTP request from an input stream.
//
// It performs a single Read into a fixed-size buffer: bytes beyond the buffer
// size, or bytes that arrive after the first Read returns, are not part of
// the request. There is no Content-Length or chunked framing.
// A single Decoder is not safe for concurrent use.
type Decoder struct {
	r   io.Reader
	buf []byte
}

// NewDecoder returns a new decoder that reads from r with the default buffer size.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSize(r, DefaultReadBufferSize)
}

// NewDecoderSize returns a new decoder whose single read is bounded by size bytes.
func NewDecoderSize(r io.Reader, size int) *Decoder {
	if size <= 0 {
		size = DefaultReadBufferSize
	}
	return &Decoder{r: r, buf: make([]byte, size)}
}

// ReadError reports a failure of the underlying reader.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("http: read request: %v", e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeRequest reads and decodes the next request.
//
// Errors are a *ReadError when the reader fails, ErrInvalidEncoding (wrapped)
// when the bytes are not UTF-8, or a *ParseError from ParseRequest.
// An EOF is not a read error: whatever was read, possibly nothing, is decoded.
func (dec *Decoder) DecodeRequest() (*Request, error) {
	n, err := dec.r.Read(dec.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &ReadError{Err: err}
	}
	return UnmarshalRequest(dec.buf[:n])
}
