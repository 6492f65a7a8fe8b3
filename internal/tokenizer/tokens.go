// Package tokenizer splits HTTP request lines using Shape's tokenizer framework.
package tokenizer

// Token type constants for the request line.
const (
	TokenField = "Field" // method, request-target or version
	TokenSpace = "Space" // run of whitespace between fields
)
