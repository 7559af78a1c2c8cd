// Package css holds the small CSS model the exporter needs: @font-face
// declarations fetched from webfont providers and a whitespace minifier for
// the generated stylesheet.
package css

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func cssEscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FontFace represents an @font-face declaration.
type FontFace struct {
	Family string // font-family value
	Src    string // src value (URL or data URI reference)
	Style  string // font-style: normal, italic
	Weight string // font-weight: normal, bold, 400, 700
}

// urlExtractPattern matches url() references in raw CSS value strings.
// Handles: url("path"), url('path'), url(path)
var urlExtractPattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"']*))\s*\)`)

// SrcURL returns the first url() reference from the src value, or "".
func (ff *FontFace) SrcURL() string {
	sub := urlExtractPattern.FindStringSubmatch(ff.Src)
	if sub == nil {
		return ""
	}
	if sub[1] != "" {
		return strings.TrimSpace(sub[1])
	}
	return strings.TrimSpace(sub[2])
}

// RewriteSrcURL replaces every url() reference in the src value via fn.
func (ff *FontFace) RewriteSrcURL(fn func(originalURL string) string) {
	ff.Src = urlExtractPattern.ReplaceAllStringFunc(ff.Src, func(match string) string {
		sub := urlExtractPattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		originalURL := sub[1]
		if originalURL == "" {
			originalURL = sub[2]
		}
		return fmt.Sprintf("url(\"%s\")", cssEscapeDoubleQuoted(fn(strings.TrimSpace(originalURL))))
	})
}

// WriteFontFaces writes @font-face blocks to w in source order.
func WriteFontFaces(w io.Writer, faces []FontFace) (int64, error) {
	var total int64
	for i := range faces {
		n, err := writeFontFace(w, &faces[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// FontFacesString returns the CSS text of the declarations.
func FontFacesString(faces []FontFace) string {
	var sb strings.Builder
	WriteFontFaces(&sb, faces) //nolint:errcheck
	return sb.String()
}

// writeFontFace writes a single @font-face block to w.
func writeFontFace(w io.Writer, ff *FontFace) (int, error) {
	var total int
	n, err := fmt.Fprint(w, "@font-face {\n")
	total += n
	if err != nil {
		return total, err
	}

	// Write properties in a stable order
	if ff.Family != "" {
		n, err = fmt.Fprintf(w, "  font-family: \"%s\";\n", cssEscapeDoubleQuoted(ff.Family))
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Src != "" {
		n, err = fmt.Fprintf(w, "  src: %s;\n", ff.Src)
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Style != "" {
		n, err = fmt.Fprintf(w, "  font-style: %s;\n", ff.Style)
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Weight != "" {
		n, err = fmt.Fprintf(w, "  font-weight: %s;\n", ff.Weight)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
