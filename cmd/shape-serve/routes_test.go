package main

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-serve/pkg/http"
)

func TestDemoRoutes(t *testing.T) {
	routes := demoRoutes()
	for _, path := range []string{"/", "/echo", "/headers"} {
		if _, ok := routes[path]; !ok {
			t.Errorf("demoRoutes() missing %q", path)
		}
	}
}

func TestHandleRoot(t *testing.T) {
	res := handleRoot(&http.Request{Path: "/"})
	body, _ := res.Body()
	if body != "Hello from shape-serve" {
		t.Errorf("body = %q, want greeting", body)
	}
	if res.Status != http.StatusOK {
		t.Errorf("Status = %v, want 200 OK", res.Status)
	}
}

func TestHandleEcho(t *testing.T) {
	req, err := http.ParseRequest("POST /echo HTTP/1.0\r\nContent-Type: application/json\r\n\r\n{\"a\":1}")
	if err != nil {
		t.Fatalf("ParseRequest() error = %v", err)
	}

	res := handleEcho(req)
	body, _ := res.Body()
	if body != `{"a":1}` {
		t.Errorf("body = %q, want echoed JSON", body)
	}
	if got := res.Headers.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := res.Headers.Get("Content-Length"); got != "7" {
		t.Errorf("Content-Length = %q, want 7", got)
	}
}

func TestHandleEcho_NoBody(t *testing.T) {
	res := handleEcho(&http.Request{Path: "/echo", Headers: http.Headers{}})
	if res.Status != http.StatusBadRequest {
		t.Errorf("Status = %v, want 400 Bad Request", res.Status)
	}
}

func TestHandleHeaders(t *testing.T) {
	res := handleHeaders(&http.Request{Headers: http.Headers{"Host": "x", "Accept": "*/*"}})
	body, _ := res.Body()
	if body != "Accept: */*\nHost: x\n" {
		t.Errorf("body = %q, want sorted header listing", body)
	}
	if !strings.HasPrefix(res.String(), "HTTP/1.1 200 OK\r\n") {
		t.Errorf("response = %q, want 200 status line", res.String())
	}
}
