package css

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

const providerSheet = `
/* latin */
@font-face {
  font-family: 'Pacifico';
  font-style: normal;
  font-weight: 400;
  src: url(https://fonts.example/pacifico.woff2) format('woff2');
}
@media (min-width: 0px) {
  .unrelated { color: red; }
}
@font-face {
  font-family: "Caveat";
  src: url("https://fonts.example/caveat.woff2");
}
@font-face {
  font-family: 'Broken';
}
`

func TestParseFontFaces(t *testing.T) {
	faces := ParseFontFaces([]byte(providerSheet), zaptest.NewLogger(t))
	if len(faces) != 2 {
		t.Fatalf("expected 2 usable faces, got %d", len(faces))
	}
	if faces[0].Family != "Pacifico" || faces[0].Weight != "400" {
		t.Fatalf("first face mismatch: %+v", faces[0])
	}
	if got := faces[0].SrcURL(); got != "https://fonts.example/pacifico.woff2" {
		t.Fatalf("src url mismatch: %q", got)
	}
	if faces[1].Family != "Caveat" {
		t.Fatalf("second face mismatch: %+v", faces[1])
	}
}

func TestParseFontFacesEmpty(t *testing.T) {
	if faces := ParseFontFaces([]byte(".a { color: red }"), zaptest.NewLogger(t)); len(faces) != 0 {
		t.Fatalf("expected no faces, got %d", len(faces))
	}
}

func TestRewriteSrcURL(t *testing.T) {
	ff := FontFace{
		Family: "Pacifico",
		Src:    "url(https://fonts.example/pacifico.woff2) format('woff2')",
	}
	ff.RewriteSrcURL(func(orig string) string {
		if orig != "https://fonts.example/pacifico.woff2" {
			t.Fatalf("unexpected original url: %q", orig)
		}
		return "data:font/woff2;base64,AA"
	})
	if !strings.Contains(ff.Src, `url("data:font/woff2;base64,AA")`) {
		t.Fatalf("src not rewritten: %q", ff.Src)
	}
}

func TestFontFacesString(t *testing.T) {
	out := FontFacesString([]FontFace{{
		Family: "Pacifico",
		Src:    `url("data:font/woff2;base64,AA")`,
		Style:  "normal",
		Weight: "400",
	}})
	for _, want := range []string{"@font-face", `font-family: "Pacifico"`, "font-style: normal", "font-weight: 400"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMinify(t *testing.T) {
	in := `
/* comment */
.screen {
  display: none;
  color: #fff;
}
.screen:target { display: block; }
.device .screen a { color: red; }
`
	out := Minify(in)

	if strings.Contains(out, "comment") {
		t.Fatalf("comment survived: %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Fatalf("newlines survived: %q", out)
	}
	if !strings.Contains(out, ".screen{display:none;color:#fff;}") {
		t.Fatalf("structural whitespace not collapsed: %q", out)
	}
	// descendant combinators must keep their single space
	if !strings.Contains(out, ".device .screen a{color:red;}") {
		t.Fatalf("combinator spacing broken: %q", out)
	}
}

func TestMinifyKeepsPseudoClasses(t *testing.T) {
	out := Minify("input:checked + .gallery-slide { display: block; }")
	if !strings.Contains(out, "input:checked") {
		t.Fatalf("pseudo class broken: %q", out)
	}
	if !strings.Contains(out, ".gallery-slide{display:block;}") {
		t.Fatalf("rule broken: %q", out)
	}
}
