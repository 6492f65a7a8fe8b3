package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for an HTTP request line.
// The request line is split on runs of whitespace, so the tokenizer uses two
// matchers that together cover every rune:
// 1. Space (one or more whitespace runes)
// 2. Field (one or more non-whitespace runes)
//
// Whitespace is a token here rather than skipped, so the default whitespace
// skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SpaceMatcher(),
		FieldMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SpaceMatcher matches a run of whitespace runes.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenSpace, value)
	}
}

// FieldMatcher matches a run of non-whitespace runes.
func FieldMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenField, value)
	}
}

// Fields returns the whitespace-separated fields of line in order.
func Fields(line string) []string {
	tok := NewTokenizerWithStream(tokenizer.NewStream(line))

	tokens, _ := tok.Tokenize()
	fields := make([]string, 0, 3)
	for _, t := range tokens {
		if t.Kind() == TokenField {
			fields = append(fields, t.ValueString())
		}
	}
	return fields
}
