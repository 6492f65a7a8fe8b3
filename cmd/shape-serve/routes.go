package main

import (
	"strings"

	"github.com/shapestone/shape-serve/pkg/http"
)

// demoRoutes returns the handlers installed by the serve command.
func demoRoutes() map[string]http.Handler {
	return map[string]http.Handler{
		"/":        http.HandlerFunc(handleRoot),
		"/echo":    http.HandlerFunc(handleEcho),
		"/headers": http.HandlerFunc(handleHeaders),
	}
}

func handleRoot(req *http.Request) *http.Response {
	res := http.NewResponse()
	res.SetBody("Hello from shape-serve")
	return res
}

// handleEcho answers with the request body, or 400 when there is none.
func handleEcho(req *http.Request) *http.Response {
	if !req.HasBody() {
		res := http.NewStatusResponse(http.StatusBadRequest)
		res.SetBody("no body to echo")
		return res
	}
	res := http.NewResponse()
	if ct := req.Headers.Get("Content-Type"); ct != "" {
		res.Headers.Set("Content-Type", ct)
	}
	res.SetBody(req.Body)
	return res
}

func handleHeaders(req *http.Request) *http.Response {
	var b strings.Builder
	for _, k := range req.Headers.Keys() {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(req.Headers[k])
		b.WriteString("\n")
	}
	res := http.NewResponse()
	res.SetBody(b.String())
	return res
}
