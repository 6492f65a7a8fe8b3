package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-serve/internal/parser"
)

// Render converts an AST node (from Parse, RequestToNode or ResponseToNode)
// back to HTTP wire format bytes.
func Render(node ast.SchemaNode) ([]byte, error) {
	m, err := parser.FromNode(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}

	switch m.Type {
	case parser.TypeRequest:
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(req)
	default:
		resp, err := NodeToResponse(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(resp)
	}
}
