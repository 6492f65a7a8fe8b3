// Package parser maps HTTP messages to shape-core AST nodes and back.
//
// A message is represented as an ObjectNode with the following structure:
//
// Request:
//
//	{ "type": "request", "method": "POST", "path": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
//
// "body" is omitted when the message has none. Headers are listed in sorted
// key order.
package parser

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Message type values of the "type" property.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
)

var zeroPos = ast.Position{}

// Message is the flat form of a request or response exchanged with the AST.
type Message struct {
	Type       string
	Method     string
	Path       string
	Version    string
	StatusCode int
	Reason     string
	Headers    map[string]string
	Body       string
	HasBody    bool
}

// ToNode converts a message into an AST ObjectNode.
func ToNode(m *Message) (ast.SchemaNode, error) {
	props := map[string]ast.SchemaNode{
		"version": ast.NewLiteralNode(m.Version, zeroPos),
		"headers": headersToNode(m.Headers),
	}

	switch m.Type {
	case TypeRequest:
		props["type"] = ast.NewLiteralNode(TypeRequest, zeroPos)
		props["method"] = ast.NewLiteralNode(m.Method, zeroPos)
		props["path"] = ast.NewLiteralNode(m.Path, zeroPos)
	case TypeResponse:
		props["type"] = ast.NewLiteralNode(TypeResponse, zeroPos)
		props["statusCode"] = ast.NewLiteralNode(int64(m.StatusCode), zeroPos)
		props["reason"] = ast.NewLiteralNode(m.Reason, zeroPos)
	default:
		return nil, fmt.Errorf("unknown message type %q", m.Type)
	}

	if m.HasBody {
		props["body"] = ast.NewLiteralNode(m.Body, zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos), nil
}

func headersToNode(headers map[string]string) ast.SchemaNode {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	elements := make([]ast.SchemaNode, len(keys))
	for i, k := range keys {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(k, zeroPos),
			"value": ast.NewLiteralNode(headers[k], zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// FromNode converts an AST ObjectNode back to a message.
func FromNode(node ast.SchemaNode) (*Message, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	m := &Message{}

	m.Type = stringProp(props, "type")
	if m.Type != TypeRequest && m.Type != TypeResponse {
		return nil, fmt.Errorf("unknown message type %q", m.Type)
	}
	m.Method = stringProp(props, "method")
	m.Path = stringProp(props, "path")
	m.Version = stringProp(props, "version")
	m.Reason = stringProp(props, "reason")

	if v, ok := props["statusCode"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			switch code := lit.Value().(type) {
			case int64:
				m.StatusCode = int(code)
			case float64:
				m.StatusCode = int(code)
			case string:
				m.StatusCode, _ = strconv.Atoi(code)
			}
		}
	}

	m.Headers = map[string]string{}
	if v, ok := props["headers"]; ok {
		if err := nodeToHeaders(v, m.Headers); err != nil {
			return nil, err
		}
	}

	if v, ok := props["body"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				m.Body = s
				m.HasBody = true
			}
		}
	}

	return m, nil
}

func stringProp(props map[string]ast.SchemaNode, name string) string {
	v, ok := props[name]
	if !ok {
		return ""
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func nodeToHeaders(node ast.SchemaNode, dst map[string]string) error {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	for _, elem := range arr.Elements() {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		dst[stringProp(props, "key")] = stringProp(props, "value")
	}
	return nil
}
