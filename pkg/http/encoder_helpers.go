package http

import "strconv"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD PATH VERSION\r\n" to buf.
func appendRequestLine(buf []byte, method Method, path string, version Version) []byte {
	buf = append(buf, method.String()...)
	buf = append(buf, ' ')
	buf = append(buf, path...)
	buf = append(buf, ' ')
	buf = append(buf, version.String()...)
	return appendCRLF(buf)
}

// appendStatusLine appends "HTTP/1.1 CODE REASON\r\n" to buf. The space
// after CODE is written even when the reason is empty.
func appendStatusLine(buf []byte, status StatusCode) []byte {
	buf = append(buf, ProtocolVersion...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(status), 10)
	buf = append(buf, ' ')
	buf = append(buf, status.Reason()...)
	return appendCRLF(buf)
}
