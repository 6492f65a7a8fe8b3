package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-serve/internal/parser"
)

// RequestToNode converts a Request to an AST ObjectNode.
func RequestToNode(req *Request) (ast.SchemaNode, error) {
	return parser.ToNode(&parser.Message{
		Type:    parser.TypeRequest,
		Method:  req.Method.String(),
		Path:    req.Path,
		Version: req.Version.String(),
		Headers: req.Headers,
		Body:    req.Body,
		HasBody: req.HasBody(),
	})
}

// ResponseToNode converts a Response to an AST ObjectNode.
func ResponseToNode(res *Response) (ast.SchemaNode, error) {
	body, hasBody := res.Body()
	return parser.ToNode(&parser.Message{
		Type:       parser.TypeResponse,
		Version:    ProtocolVersion,
		StatusCode: res.Status.Code(),
		Reason:     res.Status.Reason(),
		Headers:    res.Headers,
		Body:       body,
		HasBody:    hasBody,
	})
}

// NodeToRequest converts an AST ObjectNode to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	m, err := parser.FromNode(node)
	if err != nil {
		return nil, fmt.Errorf("http: NodeToRequest: %w", err)
	}
	if m.Type != parser.TypeRequest {
		return nil, fmt.Errorf("http: NodeToRequest: node is a %s", m.Type)
	}

	method, err := ParseMethod(m.Method)
	if err != nil {
		return nil, err
	}
	version, err := ParseVersion(m.Version)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:  method,
		Path:    m.Path,
		Version: version,
		Headers: Headers(m.Headers),
		Body:    m.Body,
	}, nil
}

// NodeToResponse converts an AST ObjectNode to a Response.
// The headers are taken as given; a body, when present, is set without
// recomputing Content-Length so that the node round-trips unchanged.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	m, err := parser.FromNode(node)
	if err != nil {
		return nil, fmt.Errorf("http: NodeToResponse: %w", err)
	}
	if m.Type != parser.TypeResponse {
		return nil, fmt.Errorf("http: NodeToResponse: node is a %s", m.Type)
	}

	return &Response{
		Status:  StatusCode(m.StatusCode),
		Headers: Headers(m.Headers),
		body:    m.Body,
		hasBody: m.HasBody,
	}, nil
}
