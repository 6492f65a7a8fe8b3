package tokenizer

import (
	"reflect"
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestTokenize_RequestLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("GET /api HTTP/1.1")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	// Expect: Field("GET"), Space, Field("/api"), Space, Field("HTTP/1.1")
	expected := []struct {
		kind  string
		value string
	}{
		{TokenField, "GET"},
		{TokenSpace, " "},
		{TokenField, "/api"},
		{TokenSpace, " "},
		{TokenField, "HTTP/1.1"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestTokenize_MixedWhitespace(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("GET \t /  HTTP/1.0")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	if len(tokens) != 5 {
		t.Fatalf("token count = %d, want 5. tokens = %v", len(tokens), formatTokens(tokens))
	}
	if tokens[1].Kind() != TokenSpace || tokens[1].ValueString() != " \t " {
		t.Errorf("token[1] = %v, want Space(' \\t ')", tokens[1])
	}
}

func TestNewTokenizerWithStream(t *testing.T) {
	stream := coretok.NewStream("POST /upload HTTP/1.1")
	tok := NewTokenizerWithStream(stream)

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	if tokens[0].Kind() != TokenField || tokens[0].ValueString() != "POST" {
		t.Errorf("tokens[0] = %v, want Field('POST')", tokens[0])
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"GET /foo HTTP/1.1", []string{"GET", "/foo", "HTTP/1.1"}},
		{"  GET   /foo  ", []string{"GET", "/foo"}},
		{"GET", []string{"GET"}},
		{"", []string{}},
		{"   ", []string{}},
		{"GET / HTTP/1.1 extra", []string{"GET", "/", "HTTP/1.1", "extra"}},
	}

	for _, tt := range tests {
		got := Fields(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Fields(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSpaceMatcher_EOS(t *testing.T) {
	matcher := SpaceMatcher()
	stream := coretok.NewStream("")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestSpaceMatcher_NonSpace(t *testing.T) {
	matcher := SpaceMatcher()
	stream := coretok.NewStream("GET")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil for non-space char, got %v", tok)
	}
}

func TestFieldMatcher_StopsAtSpace(t *testing.T) {
	matcher := FieldMatcher()
	stream := coretok.NewStream("/index.html HTTP/1.1")

	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token, got nil")
	}
	if tok.Kind() != TokenField {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenField)
	}
	if tok.ValueString() != "/index.html" {
		t.Errorf("Value = %q, want /index.html", tok.ValueString())
	}
}

func TestFieldMatcher_StartWithSpace(t *testing.T) {
	matcher := FieldMatcher()
	stream := coretok.NewStream(" GET")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil when starting with space, got %v", tok)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
