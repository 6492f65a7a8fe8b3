package http

import (
	"io"
)

// Validate reports whether input would be accepted by the request decoder.
// It returns nil or the same *ParseError ParseRequest would return.
func Validate(input string) error {
	_, err := ParseRequest(input)
	return err
}

// ValidateReader validates everything readable from r, including the UTF-8
// check the server applies to raw bytes.
func ValidateReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = UnmarshalRequest(data)
	return err
}
