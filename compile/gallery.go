package compile

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lovemedo/project"
)

// buildGallery renders a slideshow driven entirely by hidden radio inputs.
//
// Each slide is preceded by its radio toggle so one static stylesheet rule
// (input:checked + .gallery-slide) activates the selected image for every
// gallery in the document. Prev/next controls are labels targeting the
// adjacent toggles with wraparound. Each image additionally gets its own
// lightbox, cross-linked to its neighbors so the modal can page too.
func (sy *synthesizer) buildGallery(block *etree.Element, el *project.ScreenElement, sc screenContext) []*etree.Element {
	items := el.GalleryItems()
	if len(items) == 0 {
		sy.log.Warn("Gallery has no items", zap.String("id", el.ID))
		empty := block.CreateElement("div")
		empty.CreateAttr("class", "gallery gallery-empty")
		empty.SetText("​")
		return nil
	}

	gallery := block.CreateElement("div")
	gallery.CreateAttr("class", "gallery")

	group := galleryGroupName(el.ID)
	n := len(items)

	for i, ref := range items {
		src := sy.p.ResolveMedia(ref)

		input := gallery.CreateElement("input")
		input.CreateAttr("type", "radio")
		input.CreateAttr("class", "gallery-toggle")
		input.CreateAttr("name", group)
		input.CreateAttr("id", galleryToggleID(el.ID, i))
		if i == 0 {
			input.CreateAttr("checked", "checked")
		}

		slide := gallery.CreateElement("div")
		slide.CreateAttr("class", "gallery-slide")

		zoom := slide.CreateElement("a")
		zoom.CreateAttr("class", "media-zoom")
		zoom.CreateAttr("href", "#"+galleryLightboxAnchor(el.ID, i))

		img := zoom.CreateElement("img")
		img.CreateAttr("class", "gallery-image")
		img.CreateAttr("src", src)
		img.CreateAttr("alt", fmt.Sprintf("%d / %d", i+1, n))

		if n > 1 {
			prev := slide.CreateElement("label")
			prev.CreateAttr("class", "gallery-nav gallery-prev")
			prev.CreateAttr("for", galleryToggleID(el.ID, (i-1+n)%n))
			prev.SetText("‹")

			next := slide.CreateElement("label")
			next.CreateAttr("class", "gallery-nav gallery-next")
			next.CreateAttr("for", galleryToggleID(el.ID, (i+1)%n))
			next.SetText("›")

			counter := slide.CreateElement("span")
			counter.CreateAttr("class", "gallery-counter")
			counter.SetText(fmt.Sprintf("%d / %d", i+1, n))
		}
	}

	if n > 1 {
		thumbs := gallery.CreateElement("div")
		thumbs.CreateAttr("class", "gallery-thumbs")
		for i, ref := range items {
			thumb := thumbs.CreateElement("label")
			thumb.CreateAttr("class", "gallery-thumb")
			thumb.CreateAttr("for", galleryToggleID(el.ID, i))
			timg := thumb.CreateElement("img")
			timg.CreateAttr("src", sy.p.ResolveMedia(ref))
			timg.CreateAttr("alt", fmt.Sprintf("%d", i+1))
		}
	}

	addCaption(block, el)

	lightboxes := make([]*etree.Element, 0, n)
	for i, ref := range items {
		lb := newLightbox(galleryLightboxAnchor(el.ID, i), sc.anchor)
		lbImg := lb.CreateElement("img")
		lbImg.CreateAttr("class", "lightbox-media")
		lbImg.CreateAttr("src", sy.p.ResolveMedia(ref))
		lbImg.CreateAttr("alt", fmt.Sprintf("%d / %d", i+1, n))
		if n > 1 {
			prev := lb.CreateElement("a")
			prev.CreateAttr("class", "lightbox-nav lightbox-prev")
			prev.CreateAttr("href", "#"+galleryLightboxAnchor(el.ID, (i-1+n)%n))
			prev.SetText("‹")

			next := lb.CreateElement("a")
			next.CreateAttr("class", "lightbox-nav lightbox-next")
			next.CreateAttr("href", "#"+galleryLightboxAnchor(el.ID, (i+1)%n))
			next.SetText("›")
		}
		lightboxes = append(lightboxes, lb)
	}
	return lightboxes
}
