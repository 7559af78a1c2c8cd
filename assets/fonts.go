package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lovemedo/css"
)

// fontMIMEByExt maps webfont payload extensions to MIME types for data URIs.
var fontMIMEByExt = map[string]string{
	".woff2": "font/woff2",
	".woff":  "font/woff",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
}

// EmbedWebFonts fetches a webfont stylesheet and returns its @font-face
// rules with every source URL replaced by an embedded data URI.
//
// Fonts are cosmetic: any failure (unreachable stylesheet, no usable faces,
// an undownloadable payload) degrades to an empty string and the export
// proceeds on system fonts.
func EmbedWebFonts(ctx context.Context, client *http.Client, url string, log *zap.Logger) string {
	if url == "" {
		return ""
	}
	if log == nil {
		log = zap.NewNop()
	}

	sheet, err := fetch(ctx, client, url)
	if err != nil {
		log.Warn("Unable to fetch font stylesheet, continuing without webfonts", zap.String("url", url), zap.Error(err))
		return ""
	}

	faces := css.ParseFontFaces(sheet, log)
	if len(faces) == 0 {
		log.Warn("Font stylesheet contains no usable @font-face rules", zap.String("url", url))
		return ""
	}

	var embedded []css.FontFace
	for _, face := range faces {
		src := face.SrcURL()
		if src == "" {
			continue
		}
		data, err := fetch(ctx, client, src)
		if err != nil {
			log.Warn("Unable to fetch font payload, skipping face",
				zap.String("family", face.Family), zap.String("url", src), zap.Error(err))
			continue
		}
		face.RewriteSrcURL(func(string) string {
			return dataURI(fontMIME(src), data)
		})
		embedded = append(embedded, face)
	}
	if len(embedded) == 0 {
		return ""
	}

	log.Debug("Embedded webfonts", zap.Int("faces", len(embedded)))
	return css.FontFacesString(embedded)
}

func fontMIME(url string) string {
	u := url
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if i := strings.LastIndexByte(u, '.'); i >= 0 {
		if mime, ok := fontMIMEByExt[strings.ToLower(u[i:])]; ok {
			return mime
		}
	}
	return "application/octet-stream"
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// fetch downloads a single resource honoring the context deadline.
func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
