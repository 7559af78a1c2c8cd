// Package assets converts every transient media reference of a project into
// an embeddable data literal so the compiled document is fully
// self-contained.
package assets

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	// Registers decoders for formats the editor accepts uploads in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Options bound the size of embedded images.
type Options struct {
	// MaxDimension caps the longer image side in pixels; 0 disables resizing.
	MaxDimension int
	// JPEGQuality is the re-encoding quality for lossy images.
	JPEGQuality int
	// Optimize enables image recompression during inlining.
	Optimize bool
}

// encodePNG serializes a decoded image as PNG bytes.
func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// Recompress decodes, bounds and re-encodes an image.
//
// Images with transparency stay PNG, everything else becomes JPEG. Returns
// the new payload and MIME type; undecodable input comes back unchanged so a
// format we cannot read still embeds as-is.
func Recompress(data []byte, opts Options) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, ""
	}

	if opts.MaxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		} else if format == "jpeg" {
			// Already bounded and already JPEG, re-encoding can only lose.
			return data, "image/jpeg"
		}
	}

	if format == "png" || format == "gif" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return data, ""
		}
		return buf.Bytes(), "image/png"
	}

	quality := opts.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return data, ""
	}
	return buf.Bytes(), "image/jpeg"
}
