package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ParseFontFaces extracts all @font-face declarations from a stylesheet.
// Anything else in the sheet (rules, media blocks, imports) is skipped -
// webfont provider CSS contains nothing we need besides the font faces.
func ParseFontFaces(data []byte, log *zap.Logger) []FontFace {
	if log == nil {
		log = zap.NewNop()
	}

	var faces []FontFace

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return faces

		case css.BeginAtRuleGrammar:
			if string(data) == "@font-face" {
				ff := parseFontFace(parser)
				if ff.Family != "" && ff.Src != "" {
					faces = append(faces, ff)
				} else {
					log.Debug("Skipping incomplete @font-face", zap.String("family", ff.Family))
				}
			} else {
				skipAtRuleBlock(parser)
			}
		}
	}
}

// parseFontFace consumes declarations until the end of an @font-face block.
func parseFontFace(parser *css.Parser) FontFace {
	ff := FontFace{}

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return ff

		case css.DeclarationGrammar:
			propName := string(data)
			values := parser.Values()
			if len(values) == 0 {
				continue
			}

			var parts []string
			for _, v := range values {
				if v.TokenType != css.WhitespaceToken {
					parts = append(parts, string(v.Data))
				}
			}
			valStr := strings.Join(parts, " ")

			switch propName {
			case "font-family":
				ff.Family = unquote(valStr)
			case "src":
				ff.Src = valStr
			case "font-style":
				ff.Style = valStr
			case "font-weight":
				ff.Weight = valStr
			}
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// Minify collapses whitespace in a stylesheet before it is embedded into the
// exported document. It is deliberately conservative: comments are dropped,
// whitespace adjacent to structural punctuation is removed and every other
// whitespace run becomes a single space, so selector combinators keep their
// meaning.
func Minify(sheet string) string {
	input := parse.NewInput(bytes.NewReader([]byte(sheet)))
	lexer := css.NewLexer(input)

	var sb strings.Builder
	sb.Grow(len(sheet))

	pending := false
	prev := byte(0)
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return sb.String()
		}
		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pending = true
			continue
		}
		if pending {
			// Whitespace after ':' only ever follows a property name; space
			// before ':' (a pseudo-class on a descendant) stays meaningful.
			if prev != ':' && !squashableBoundary(prev) && !squashableBoundary(data[0]) {
				sb.WriteByte(' ')
			}
			pending = false
		}
		sb.Write(data)
		prev = data[len(data)-1]
	}
}

// squashableBoundary reports whether whitespace next to b carries no meaning
// in any CSS context.
func squashableBoundary(b byte) bool {
	switch b {
	case 0, '{', '}', ';', ',':
		return true
	}
	return false
}
