package compile

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lovemedo/project"
)

// Safe-area remap for content screens: authored 0-100% element space is
// letterboxed into the band between the navigation bar and the next button.
const (
	contentBandTop    = 10.0
	contentBandBottom = 85.0
)

// synthesizer emits markup and style fragments for screens and elements.
// It holds the read-only project for media resolution and collects nothing
// itself - lightbox fragments travel back up through return values.
type synthesizer struct {
	p   *project.Project
	log *zap.Logger
}

// screenContext carries the navigation neighborhood of the screen being
// synthesized. Empty anchors mean "no such neighbor".
type screenContext struct {
	screen     *project.Screen
	anchor     string
	prevAnchor string
	nextAnchor string
	navAnchor  string // anchor of the navigation hub screen, if one exists
}

// buildScreen synthesizes one screen block and returns it along with the
// lightbox fragments its elements produced. Lightboxes are full-viewport
// modals and must be attached after the screen sequence by the caller.
func (sy *synthesizer) buildScreen(parent *etree.Element, sc screenContext) (*etree.Element, []*etree.Element) {
	section := parent.CreateElement("section")
	section.CreateAttr("id", sc.anchor)
	class := "screen screen-" + sc.screen.Type.String()
	section.CreateAttr("class", class)
	if style := sy.backgroundStyle(&sc.screen.Background); style != "" {
		section.CreateAttr("style", style)
	}
	if sc.screen.Background.Type == project.BackgroundTypeVideo {
		sy.backgroundVideo(section, sc.screen.Background.Value)
	}

	if overlay := Particles(sc.screen.Background.Overlay); overlay != nil {
		section.AddChild(overlay)
	}

	var lightboxes []*etree.Element

	switch sc.screen.Type {
	case project.ScreenTypeContent:
		sy.buildNavbar(section, sc)
		lightboxes = sy.buildElements(section, sc)
		sy.buildNextButton(section, sc)
	case project.ScreenTypeNavigation:
		sy.buildScreenList(section, sc)
		lightboxes = sy.buildElements(section, sc)
	default:
		lightboxes = sy.buildElements(section, sc)
	}

	return section, lightboxes
}

// buildElements renders the screen's elements in document order. Buttons
// configured as the forward-navigation control on content screens are
// skipped here: they only customize the auto-generated next button and
// rendering them too would duplicate the control.
func (sy *synthesizer) buildElements(section *etree.Element, sc screenContext) []*etree.Element {
	var lightboxes []*etree.Element
	for i := range sc.screen.Elements {
		el := &sc.screen.Elements[i]
		if sc.screen.Type == project.ScreenTypeContent && el.Type == project.ElementTypeButton && el.Meta.Button.IsNext() {
			continue
		}
		lightboxes = append(lightboxes, sy.synthesizeElement(section, el, sc)...)
	}
	return lightboxes
}

// synthesizeElement emits the markup for a single element and returns any
// lightbox fragments it requires.
func (sy *synthesizer) synthesizeElement(parent *etree.Element, el *project.ScreenElement, sc screenContext) []*etree.Element {
	block := parent.CreateElement("div")
	block.CreateAttr("class", "element element-"+el.Type.String())
	block.CreateAttr("style", sy.blockStyle(el, sc.screen.Type))

	switch el.Type {
	case project.ElementTypeText:
		inner := block.CreateElement("div")
		inner.CreateAttr("class", "text-content")
		applyTextStyles(inner, &el.Styles)
		inner.SetText(el.Content)

	case project.ElementTypeLongText:
		inner := block.CreateElement("div")
		inner.CreateAttr("class", "longtext-content")
		applyLongTextStyles(inner, &el.Styles)
		setMultilineText(inner, el.Content)

	case project.ElementTypeImage:
		return sy.buildImage(block, el, sc)

	case project.ElementTypeVideo:
		return sy.buildVideo(block, el, sc)

	case project.ElementTypeGallery:
		return sy.buildGallery(block, el, sc)

	case project.ElementTypeButton:
		sy.buildButton(block, el, sc)

	case project.ElementTypeSticker:
		sy.buildSticker(block, el)

	case project.ElementTypeShape:
		buildShape(block, el)

	default:
		sy.log.Warn("Unknown element type, skipping", zap.String("type", el.Type.String()), zap.String("id", el.ID))
	}

	return nil
}

// buildImage renders the inline image wrapped in an open-lightbox link and
// returns the paired lightbox fragment.
func (sy *synthesizer) buildImage(block *etree.Element, el *project.ScreenElement, sc screenContext) []*etree.Element {
	src := sy.p.ResolveMedia(el.Content)
	anchor := lightboxAnchor(el.ID)

	link := block.CreateElement("a")
	link.CreateAttr("class", "media-zoom")
	link.CreateAttr("href", "#"+anchor)

	img := link.CreateElement("img")
	img.CreateAttr("class", "media-image")
	img.CreateAttr("src", src)
	img.CreateAttr("alt", captionTitle(el))
	if style := mediaFrameStyle(&el.Styles); style != "" {
		img.CreateAttr("style", style)
	}

	addCaption(block, el)

	lb := newLightbox(anchor, sc.anchor)
	lbImg := lb.CreateElement("img")
	lbImg.CreateAttr("class", "lightbox-media")
	lbImg.CreateAttr("src", src)
	lbImg.CreateAttr("alt", captionTitle(el))
	return []*etree.Element{lb}
}

// buildVideo renders the inline playable video. The lightbox affordance is a
// separate corner control so it never competes with native playback
// controls on the inline instance.
func (sy *synthesizer) buildVideo(block *etree.Element, el *project.ScreenElement, sc screenContext) []*etree.Element {
	src := sy.p.ResolveMedia(el.Content)
	anchor := lightboxAnchor(el.ID)

	video := block.CreateElement("video")
	video.CreateAttr("class", "media-video")
	video.CreateAttr("src", src)
	video.CreateAttr("controls", "controls")
	video.CreateAttr("preload", "metadata")
	video.SetText("Video playback is not supported here.")

	expand := block.CreateElement("a")
	expand.CreateAttr("class", "media-expand")
	expand.CreateAttr("href", "#"+anchor)
	expand.SetText("⤢")

	addCaption(block, el)

	lb := newLightbox(anchor, sc.anchor)
	lbVideo := lb.CreateElement("video")
	lbVideo.CreateAttr("class", "lightbox-media")
	lbVideo.CreateAttr("src", src)
	lbVideo.CreateAttr("controls", "controls")
	lbVideo.SetText("Video playback is not supported here.")
	return []*etree.Element{lb}
}

// buildButton renders a navigation button as a styled link.
func (sy *synthesizer) buildButton(block *etree.Element, el *project.ScreenElement, sc screenContext) {
	link := block.CreateElement("a")
	link.CreateAttr("class", "button")
	link.CreateAttr("href", "#"+sy.navigationTarget(el, sc))
	if style := buttonStyle(&el.Styles); style != "" {
		link.CreateAttr("style", style)
	}
	label := el.Content
	if label == "" {
		label = "•"
	}
	link.SetText(label)
}

// navigationTarget resolves a button's destination anchor. Unknown screen
// ids and unset targets fall back to the current screen (a no-op jump).
func (sy *synthesizer) navigationTarget(el *project.ScreenElement, sc screenContext) string {
	meta := el.Meta.Button
	if meta == nil || meta.NavigateTo == "" {
		return sc.anchor
	}
	switch meta.NavigateTo {
	case project.NavNext:
		if sc.nextAnchor != "" {
			return sc.nextAnchor
		}
	case project.NavBack:
		if sc.prevAnchor != "" {
			return sc.prevAnchor
		}
	default:
		if _, ok := sy.p.ScreenByID(meta.NavigateTo); ok {
			return screenAnchor(meta.NavigateTo)
		}
		sy.log.Warn("Button targets unknown screen", zap.String("element", el.ID), zap.String("target", meta.NavigateTo))
	}
	return sc.anchor
}

// buildSticker renders a free-floating glyph. Stickers never intercept
// pointer interaction and float continuously (both via the stylesheet).
func (sy *synthesizer) buildSticker(block *etree.Element, el *project.ScreenElement) {
	glyph := el.Content
	if meta := el.Meta.Sticker; meta != nil && meta.Glyph != "" {
		glyph = meta.Glyph
	}
	span := block.CreateElement("span")
	span.CreateAttr("class", "sticker")
	if el.Styles.FontSize > 0 {
		span.CreateAttr("style", fmt.Sprintf("font-size:%spx", trimFloat(el.Styles.FontSize)))
	}
	span.SetText(glyph)
}

// buildShape renders a styled rectangle or ellipse.
func buildShape(block *etree.Element, el *project.ScreenElement) {
	shape := block.CreateElement("div")
	shape.CreateAttr("class", "shape")
	var sb styleBuilder
	if el.Styles.Background != "" {
		sb.add("background", el.Styles.Background)
	}
	if el.Styles.BorderRadius > 0 {
		sb.add("border-radius", trimFloat(el.Styles.BorderRadius)+"%")
	}
	if el.Styles.FrameColor != "" {
		sb.add("border", "2px solid "+el.Styles.FrameColor)
	}
	if style := sb.String(); style != "" {
		shape.CreateAttr("style", style)
	}
	shape.SetText("​")
}

// newLightbox creates the shared modal scaffolding: a backdrop and a close
// control, both resolving back to the owning screen's anchor.
func newLightbox(anchor, screenAnchor string) *etree.Element {
	lb := etree.NewElement("div")
	lb.CreateAttr("class", "lightbox")
	lb.CreateAttr("id", anchor)

	backdrop := lb.CreateElement("a")
	backdrop.CreateAttr("class", "lightbox-backdrop")
	backdrop.CreateAttr("href", "#"+screenAnchor)
	backdrop.SetText("​")

	closeLink := lb.CreateElement("a")
	closeLink.CreateAttr("class", "lightbox-close")
	closeLink.CreateAttr("href", "#"+screenAnchor)
	closeLink.SetText("×")

	return lb
}

// addCaption renders optional title/subtitle captions under media elements.
func addCaption(block *etree.Element, el *project.ScreenElement) {
	meta := el.Meta.Caption
	if meta == nil || (meta.Title == "" && meta.Subtitle == "") {
		return
	}
	caption := block.CreateElement("div")
	caption.CreateAttr("class", "media-caption")
	if meta.Title != "" {
		t := caption.CreateElement("div")
		t.CreateAttr("class", "media-caption-title")
		t.SetText(meta.Title)
	}
	if meta.Subtitle != "" {
		s := caption.CreateElement("div")
		s.CreateAttr("class", "media-caption-subtitle")
		s.SetText(meta.Subtitle)
	}
}

func captionTitle(el *project.ScreenElement) string {
	if el.Meta.Caption != nil {
		return el.Meta.Caption.Title
	}
	return ""
}

// setMultilineText appends content converting newlines to explicit breaks.
func setMultilineText(parent *etree.Element, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			parent.SetText(line)
			continue
		}
		br := parent.CreateElement("br")
		br.SetTail(line)
	}
}

// blockStyle computes the positioning style of an element wrapper. On
// content screens the authored coordinates pass through the safe-area remap
// first; layout re-flow already happened in the compiler pre-pass.
func (sy *synthesizer) blockStyle(el *project.ScreenElement, st project.ScreenType) string {
	x, y := el.Position.X, el.Position.Y
	w, h := el.Size.Width, el.Size.Height
	if st == project.ScreenTypeContent {
		y, h = remapToContentBand(y, h)
	}

	var sb styleBuilder
	sb.add("left", trimFloat(x)+"%")
	sb.add("top", trimFloat(y)+"%")
	sb.add("width", trimFloat(w)+"%")
	sb.add("height", trimFloat(h)+"%")
	sb.add("z-index", fmt.Sprintf("%d", el.Styles.EffectiveZIndex()))
	if el.Styles.Rotation != 0 {
		sb.add("transform", fmt.Sprintf("rotate(%sdeg)", trimFloat(el.Styles.Rotation)))
	}
	if el.Styles.Opacity != nil {
		sb.add("opacity", trimFloat(*el.Styles.Opacity))
	}
	return sb.String()
}

// remapToContentBand letterboxes authored 0-100% coordinates into the
// reserved content band of a content screen.
func remapToContentBand(y, h float64) (float64, float64) {
	scale := (contentBandBottom - contentBandTop) / 100.0
	return contentBandTop + y*scale, h * scale
}

func applyTextStyles(node *etree.Element, s *project.Styles) {
	var sb styleBuilder
	if s.Color != "" {
		sb.add("color", s.Color)
	}
	if s.FontFamily != "" {
		sb.add("font-family", s.FontFamily)
	}
	if s.FontSize > 0 {
		sb.add("font-size", trimFloat(s.FontSize)+"px")
	}
	if s.FontWeight != "" {
		sb.add("font-weight", s.FontWeight)
	}
	if s.Align != "" {
		sb.add("text-align", s.Align)
	}
	if s.Shadow {
		sb.add("text-shadow", "0 2px 8px rgba(0,0,0,.4)")
	}
	if style := sb.String(); style != "" {
		node.CreateAttr("style", style)
	}
}

func applyLongTextStyles(node *etree.Element, s *project.Styles) {
	var sb styleBuilder
	if s.Color != "" {
		sb.add("color", s.Color)
	}
	if s.Background != "" {
		sb.add("background", s.Background)
	}
	if s.FontFamily != "" {
		sb.add("font-family", s.FontFamily)
	}
	if s.FontSize > 0 {
		sb.add("font-size", trimFloat(s.FontSize)+"px")
	}
	if s.Align != "" {
		sb.add("text-align", s.Align)
	}
	if s.BorderRadius > 0 {
		sb.add("border-radius", trimFloat(s.BorderRadius)+"px")
	}
	if s.FrameColor != "" {
		sb.add("border", "2px solid "+s.FrameColor)
	}
	if style := sb.String(); style != "" {
		node.CreateAttr("style", style)
	}
}

func mediaFrameStyle(s *project.Styles) string {
	var sb styleBuilder
	if s.BorderRadius > 0 {
		sb.add("border-radius", trimFloat(s.BorderRadius)+"px")
	}
	if s.FrameColor != "" {
		sb.add("border", "3px solid "+s.FrameColor)
	}
	if s.Shadow {
		sb.add("box-shadow", "0 4px 16px rgba(0,0,0,.35)")
	}
	return sb.String()
}

func buttonStyle(s *project.Styles) string {
	var sb styleBuilder
	if s.Color != "" {
		sb.add("color", s.Color)
	}
	if s.Background != "" {
		sb.add("background", s.Background)
	}
	if s.FontSize > 0 {
		sb.add("font-size", trimFloat(s.FontSize)+"px")
	}
	if s.BorderRadius > 0 {
		sb.add("border-radius", trimFloat(s.BorderRadius)+"px")
	}
	return sb.String()
}

// backgroundStyle converts a screen background into inline style.
func (sy *synthesizer) backgroundStyle(bg *project.Background) string {
	switch bg.Type {
	case project.BackgroundTypeSolid:
		if bg.Value != "" {
			return "background:" + bg.Value
		}
	case project.BackgroundTypeGradient:
		if bg.Value != "" {
			return "background:" + bg.Value
		}
	case project.BackgroundTypeImage:
		src := sy.p.ResolveMedia(bg.Value)
		if src != "" {
			return fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center", src)
		}
	}
	return ""
}

// backgroundVideo attaches a muted looping backdrop video.
func (sy *synthesizer) backgroundVideo(section *etree.Element, ref string) {
	video := section.CreateElement("video")
	video.CreateAttr("class", "bg-video")
	video.CreateAttr("src", sy.p.ResolveMedia(ref))
	video.CreateAttr("autoplay", "autoplay")
	video.CreateAttr("muted", "muted")
	video.CreateAttr("loop", "loop")
	video.CreateAttr("playsinline", "playsinline")
	video.SetText("​")
}

// styleBuilder accumulates inline CSS declarations.
type styleBuilder struct {
	sb strings.Builder
}

func (b *styleBuilder) add(name, value string) {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(';')
	}
	b.sb.WriteString(name)
	b.sb.WriteByte(':')
	b.sb.WriteString(value)
}

func (b *styleBuilder) String() string {
	return b.sb.String()
}

// trimFloat formats a percentage or pixel quantity without trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
