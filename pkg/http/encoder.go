package http

// appendRequest serializes a Request to HTTP/1.1 wire format.
// It appends "METHOD PATH VERSION\r\n" followed by headers and body.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if req.Path == "" {
		return nil, &ParseError{Err: &MissingPartError{Part: "Path"}}
	}

	buf = appendRequestLine(buf, req.Method, req.Path, req.Version)
	buf = appendHeaders(buf, req.Headers)
	buf = appendCRLF(buf) // empty line before body
	buf = append(buf, req.Body...)

	return buf, nil
}

// appendResponse serializes a Response to HTTP/1.1 wire format.
// It appends "HTTP/1.1 STATUS REASON\r\n" followed by headers and body.
// Headers are written as stored; Content-Length is maintained by SetBody.
func appendResponse(buf []byte, resp *Response) []byte {
	buf = appendStatusLine(buf, resp.Status)
	buf = appendHeaders(buf, resp.Headers)
	buf = appendCRLF(buf) // empty line before body
	if resp.hasBody {
		buf = append(buf, resp.body...)
	}
	return buf
}

// appendHeaders appends all headers in "Key: Value\r\n" format, sorted by key.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, k := range headers.Keys() {
		buf = append(buf, k...)
		buf = append(buf, ':', ' ')
		buf = append(buf, headers[k]...)
		buf = appendCRLF(buf)
	}
	return buf
}
