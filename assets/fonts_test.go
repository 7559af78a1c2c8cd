package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestEmbedWebFonts(t *testing.T) {
	payload := []byte{0x77, 0x4f, 0x46, 0x32} // arbitrary bytes, content is opaque

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/css":
			w.Header().Set("Content-Type", "text/css")
			w.Write([]byte(`@font-face {
  font-family: 'Pacifico';
  font-style: normal;
  src: url(` + srv.URL + `/font.woff2) format('woff2');
}`))
		case "/font.woff2":
			w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out := EmbedWebFonts(context.Background(), srv.Client(), srv.URL+"/css", zaptest.NewLogger(t))
	if out == "" {
		t.Fatal("expected embedded font css")
	}
	if !strings.Contains(out, "Pacifico") {
		t.Fatalf("family missing: %s", out)
	}
	if !strings.Contains(out, "data:font/woff2;base64,") {
		t.Fatalf("payload not embedded: %s", out)
	}
	if strings.Contains(out, srv.URL) {
		t.Fatalf("remote url survived embedding: %s", out)
	}
}

func TestEmbedWebFontsUnreachableDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if out := EmbedWebFonts(context.Background(), srv.Client(), srv.URL+"/css", zaptest.NewLogger(t)); out != "" {
		t.Fatalf("expected empty result for unreachable stylesheet, got %q", out)
	}
}

func TestEmbedWebFontsSkipsBrokenPayload(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/css" {
			w.Write([]byte(`@font-face { font-family: 'A'; src: url(` + srv.URL + `/missing.woff2); }`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if out := EmbedWebFonts(context.Background(), srv.Client(), srv.URL+"/css", zaptest.NewLogger(t)); out != "" {
		t.Fatalf("expected empty result when no face could be embedded, got %q", out)
	}
}

func TestEmbedWebFontsNoURL(t *testing.T) {
	if out := EmbedWebFonts(context.Background(), nil, "", zaptest.NewLogger(t)); out != "" {
		t.Fatalf("expected empty result for empty url, got %q", out)
	}
}

func TestFontMIME(t *testing.T) {
	tests := []struct{ url, want string }{
		{"https://x/y.woff2", "font/woff2"},
		{"https://x/y.woff", "font/woff"},
		{"https://x/y.TTF?v=3", "font/ttf"},
		{"https://x/y.otf#frag", "font/otf"},
		{"https://x/y", "application/octet-stream"},
	}
	for _, tc := range tests {
		if got := fontMIME(tc.url); got != tc.want {
			t.Fatalf("fontMIME(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
