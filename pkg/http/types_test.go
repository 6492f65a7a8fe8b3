package http

import (
	"reflect"
	"testing"
)

func TestVersion_String(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{1, 1}, "HTTP/1.1"},
		{Version{1, 0}, "HTTP/1.0"},
		{Version{2, 0}, "HTTP/2.0"},
		{Version{10, 42}, "HTTP/10.42"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestHeaders_GetSetDel(t *testing.T) {
	h := Headers{}
	h.Set("Content-Type", "text/plain")
	h.Set("Content-Type", "application/json")

	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Get(Content-Type) = %q, want application/json", got)
	}
	// Keys are case-sensitive.
	if got := h.Get("content-type"); got != "" {
		t.Errorf("Get(content-type) = %q, want empty", got)
	}

	h.Del("Content-Type")
	if len(h) != 0 {
		t.Errorf("after Del, len = %d, want 0", len(h))
	}
}

func TestHeaders_Clone(t *testing.T) {
	original := Headers{"Content-Type": "text/plain", "Host": "example.com"}

	clone := original.Clone()
	clone["Host"] = "modified"
	if original["Host"] == "modified" {
		t.Error("Clone is not a copy")
	}

	var nilHeaders Headers
	if nilHeaders.Clone() != nil {
		t.Error("Clone of nil should return nil")
	}
}

func TestHeaders_Keys(t *testing.T) {
	h := Headers{"b": "2", "A": "1", "a": "3"}
	want := []string{"A", "a", "b"}
	if got := h.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestHeaders_ContentLength(t *testing.T) {
	tests := []struct {
		name    string
		headers Headers
		want    int64
	}{
		{"valid", Headers{"Content-Length": "42"}, 42},
		{"absent", Headers{}, -1},
		{"invalid", Headers{"Content-Length": "abc"}, -1},
		{"zero", Headers{"Content-Length": "0"}, 0},
		{"other case ignored", Headers{"content-length": "5"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.headers.ContentLength(); got != tt.want {
				t.Errorf("ContentLength() = %d, want %d", got, tt.want)
			}
		})
	}
}
