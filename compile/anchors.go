package compile

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Anchor identity rules. Screen blocks, lightboxes and gallery toggles are
// all addressed by URL fragments, so the ids derived here must agree across
// every cross-reference in the document.

func anchorID(raw string) string {
	if s := slug.Make(raw); s != "" {
		return s
	}
	return "x"
}

// screenAnchor addresses one screen block: screen-<screenId>.
func screenAnchor(screenID string) string {
	return "screen-" + anchorID(screenID)
}

// lightboxAnchor addresses the modal paired with a media element.
func lightboxAnchor(elementID string) string {
	return "lightbox-" + anchorID(elementID)
}

// galleryLightboxAnchor addresses the modal of one gallery image.
func galleryLightboxAnchor(elementID string, index int) string {
	return fmt.Sprintf("lightbox-%s-%d", anchorID(elementID), index)
}

// galleryToggleID names the hidden radio input selecting one gallery image.
func galleryToggleID(elementID string, index int) string {
	return fmt.Sprintf("gal-%s-%d", anchorID(elementID), index)
}

// galleryGroupName keys all toggles of one gallery together so exactly one
// image is active at a time.
func galleryGroupName(elementID string) string {
	return "gal-" + anchorID(elementID)
}
