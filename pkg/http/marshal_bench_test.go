package http

import (
	"strconv"
	"testing"
)

func BenchmarkMarshal_SimpleRequest(b *testing.B) {
	req := &Request{
		Method:  MethodGet,
		Path:    "/api/users",
		Version: Version{1, 1},
		Headers: Headers{
			"Host":       "example.com",
			"Accept":     "application/json",
			"User-Agent": "shape-serve/0.1",
		},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_SimpleResponse(b *testing.B) {
	res := NewResponse()
	res.Headers.Set("Server", "shape-serve/0.1")
	res.SetBody(`{"status":"ok","count":42}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(res); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_LargeHeaders(b *testing.B) {
	res := NewResponse()
	for i := 0; i < 50; i++ {
		res.Headers.Set("X-Header-"+strconv.Itoa(i), "value-"+strconv.Itoa(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(res); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSetBody(b *testing.B) {
	res := NewResponse()
	body := []byte(`{"name":"John Doe","email":"john@example.com","age":30}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res.SetBody(body)
	}
}
