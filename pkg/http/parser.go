package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse decodes a request from input and returns it as an AST.
//
// The result is an ast.ObjectNode:
//
//	{ "type": "request", "method": "GET", "path": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Decode errors are those of ParseRequest.
func Parse(input string) (ast.SchemaNode, error) {
	req, err := ParseRequest(input)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req)
}

// ParseReader reads all data from r and parses it as a request into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	req, err := UnmarshalRequest(data)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req)
}
