package http

import (
	"io"
)

// Encoder writes HTTP messages to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire form of v, a *Request, *Response or Marshaler, in a
// single Write call.
func (enc *Encoder) Encode(v any) error {
	if m, ok := v.(Marshaler); ok && !isMessage(v) {
		data, err := m.MarshalHTTP()
		if err != nil {
			return err
		}
		_, err = enc.w.Write(data)
		return err
	}

	bp := getBuf()
	buf, err := appendMessage((*bp)[:0], v)
	if err != nil {
		putBuf(bp, *bp)
		return err
	}
	_, err = enc.w.Write(buf)
	putBuf(bp, buf)
	return err
}
