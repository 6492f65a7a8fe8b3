package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDecode_Stdin(t *testing.T) {
	var out bytes.Buffer
	decodeCmd.SetIn(strings.NewReader("GET /foo HTTP/1.1\r\nHost: x\r\n\r\n"))
	decodeCmd.SetOut(&out)
	defer decodeCmd.SetIn(nil)
	defer decodeCmd.SetOut(nil)

	if err := runDecode(decodeCmd, nil); err != nil {
		t.Fatalf("runDecode() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got["type"] != "request" || got["method"] != "GET" || got["path"] != "/foo" || got["version"] != "HTTP/1.1" {
		t.Errorf("decoded = %v, want GET /foo HTTP/1.1 request", got)
	}
	headers, ok := got["headers"].([]interface{})
	if !ok || len(headers) != 1 {
		t.Fatalf("headers = %v, want one entry", got["headers"])
	}
	if _, ok := got["body"]; ok {
		t.Error("body present, want omitted")
	}
}

func TestRunDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.txt")
	if err := os.WriteFile(path, []byte("POST /echo HTTP/1.0\r\n\r\nhi"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	decodeCmd.SetOut(&out)
	defer decodeCmd.SetOut(nil)

	if err := runDecode(decodeCmd, []string{path}); err != nil {
		t.Fatalf("runDecode() error = %v", err)
	}
	if !strings.Contains(out.String(), `"body": "hi"`) {
		t.Errorf("output = %s, want body hi", out.String())
	}
}

func TestRunDecode_Error(t *testing.T) {
	decodeCmd.SetIn(strings.NewReader("GET /foo\r\n"))
	defer decodeCmd.SetIn(nil)

	err := runDecode(decodeCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "Version is missing") {
		t.Errorf("runDecode() error = %v, want missing version", err)
	}
}

func TestRunDecode_YAML(t *testing.T) {
	var out bytes.Buffer
	decodeCmd.SetIn(strings.NewReader("GET /foo HTTP/1.1\r\n\r\n"))
	decodeCmd.SetOut(&out)
	decodeFormat = string(FormatYAML)
	defer decodeCmd.SetIn(nil)
	defer decodeCmd.SetOut(nil)
	defer func() { decodeFormat = string(FormatJSON) }()

	if err := runDecode(decodeCmd, nil); err != nil {
		t.Fatalf("runDecode() error = %v", err)
	}
	for _, want := range []string{"method: GET\n", "path: /foo\n", "type: request\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output = %q, want it to contain %q", out.String(), want)
		}
	}
}

func TestFormatValue_Unsupported(t *testing.T) {
	if _, err := formatValue(map[string]string{}, "xml"); err == nil {
		t.Error("formatValue(xml) error = nil, want unsupported format")
	}
}
