package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when the SVG viewBox carries no usable dimensions.
const defaultSVGSize = 1024

// maxRasterDim caps the raster buffer. An SVG with an enormous viewBox would
// otherwise allocate gigabytes for the RGBA backing image.
const maxRasterDim = 4096

// RasterizeSVG renders SVG data to an RGBA image bounded by maxDim on the
// longer side (0 keeps the intrinsic size, still capped by maxRasterDim).
// Vector sources cannot embed as-is into an img data URI that every viewer
// renders consistently, so the inliner rasterizes them.
func RasterizeSVG(svgData []byte, maxDim int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 {
		w = defaultSVGSize
	}
	if h <= 0 {
		h = defaultSVGSize
	}

	limit := maxRasterDim
	if maxDim > 0 && maxDim < limit {
		limit = maxDim
	}
	if w > limit || h > limit {
		s := math.Min(float64(limit)/float64(w), float64(limit)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}
