package http

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-serve/internal/tokenizer"
)

// Request represents a decoded HTTP request.
type Request struct {
	Method  Method  // GET, POST, etc.
	Path    string  // request-target, verbatim
	Version Version // (major, minor)
	Headers Headers // case-sensitive, last value wins
	Body    string  // "" if none
}

// HasBody reports whether the request carried a non-empty body.
func (r *Request) HasBody() bool { return r.Body != "" }

// ParseRequest decodes a complete HTTP request from text.
//
// The text is split into lines; the first is the request line, the lines up
// to the first blank one are headers, and every remaining line is appended,
// without separators, to the body. Errors are *ParseError values wrapping
// one of the Err* sentinels.
func ParseRequest(text string) (*Request, error) {
	s := newLineScanner(text)

	first, ok := s.next()
	if !ok {
		return nil, newParseError(ErrMissingFirstLine, 0)
	}

	req := &Request{}
	if err := parseRequestLine(first, req); err != nil {
		return nil, newParseError(err, s.line)
	}

	headers := make(Headers)
	for {
		line, ok := s.next()
		if !ok || line == "" {
			break
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, newParseError(&HeaderSeparatorError{Header: line}, s.line)
		}
		headers[key] = strings.TrimLeftFunc(value, unicode.IsSpace)
	}
	req.Headers = headers

	var body strings.Builder
	for {
		line, ok := s.next()
		if !ok {
			break
		}
		body.WriteString(line)
	}
	req.Body = body.String()

	return req, nil
}

// UnmarshalRequest decodes data as a request after checking it is valid UTF-8.
func UnmarshalRequest(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, newParseError(ErrInvalidEncoding, 0)
	}
	return ParseRequest(string(data))
}

// parseRequestLine parses "METHOD SP PATH SP VERSION". Fields past the
// version are ignored.
func parseRequestLine(line string, req *Request) error {
	fields := tokenizer.Fields(line)

	if len(fields) < 1 {
		return &MissingPartError{Part: "Method"}
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return err
	}
	req.Method = method

	if len(fields) < 2 {
		return &MissingPartError{Part: "Path"}
	}
	req.Path = fields[1]

	if len(fields) < 3 {
		return &MissingPartError{Part: "Version"}
	}
	version, err := ParseVersion(fields[2])
	if err != nil {
		return err
	}
	req.Version = version

	return nil
}

// ParseVersion parses "HTTP/MAJOR.MINOR" where both parts are non-negative
// decimal integers.
func ParseVersion(token string) (Version, error) {
	rest, ok := strings.CutPrefix(token, "HTTP/")
	if !ok {
		return Version{}, &VersionFormatError{Version: token}
	}
	majorText, minorText, ok := strings.Cut(rest, ".")
	if !ok {
		return Version{}, &VersionFormatError{Version: token}
	}
	major, err := strconv.ParseUint(majorText, 10, 0)
	if err != nil {
		return Version{}, &VersionFormatError{Version: token}
	}
	minor, err := strconv.ParseUint(minorText, 10, 0)
	if err != nil {
		return Version{}, &VersionFormatError{Version: token}
	}
	return Version{Major: uint(major), Minor: uint(minor)}, nil
}

// MarshalHTTP renders the request in wire format. Decoding the result with
// ParseRequest yields an equal Request as long as no header key contains ':'.
func (r *Request) MarshalHTTP() ([]byte, error) {
	return appendRequest(nil, r)
}

// String returns the wire-format text of the request.
func (r *Request) String() string {
	b, _ := appendRequest(nil, r)
	return string(b)
}
