// Package compile turns a project document into a single self-contained HTML
// file. All interactivity in the output is expressed with CSS pseudo-class
// selectors; the compiled document contains no script.
package compile

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lovemedo/project"
)

// Compile builds the exported document from a fully inlined project.
//
// The input is cloned first; the caller's document is never mutated. Missing
// media never fails compilation (references degrade to literal sources), the
// only error paths are an empty screen list and serialization itself.
func Compile(p *project.Project, fontCSS string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(p.Screens) == 0 {
		return "", fmt.Errorf("project %q has no screens", p.Config.Title)
	}

	work := p.Clone()

	// Layout pre-pass. Only content screens flow their elements; overlay and
	// navigation screens keep authored positions verbatim.
	for i := range work.Screens {
		if work.Screens[i].Type == project.ScreenTypeContent {
			work.Screens[i].Elements = ResolveLayout(work.Screens[i].Elements)
		}
	}

	sy := &synthesizer{p: work, log: log}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("lang", "en")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	viewport := head.CreateElement("meta")
	viewport.CreateAttr("name", "viewport")
	viewport.CreateAttr("content", "width=device-width, initial-scale=1")
	title := head.CreateElement("title")
	if work.Config.Title != "" {
		title.SetText(work.Config.Title)
	} else {
		title.SetText("A Gift For You")
	}
	style := head.CreateElement("style")
	style.SetText(buildStylesheet(work, fontCSS))

	body := html.CreateElement("body")
	device := body.CreateElement("div")
	device.CreateAttr("class", "device")

	navAnchor := ""
	if nav, ok := work.NavigationScreen(); ok {
		navAnchor = screenAnchor(nav.ID)
	}

	musicScreen := musicTargetIndex(work)

	var lightboxes []*etree.Element
	for i := range work.Screens {
		s := &work.Screens[i]
		sc := screenContext{
			screen:    s,
			anchor:    screenAnchor(s.ID),
			navAnchor: navAnchor,
		}
		if i > 0 {
			sc.prevAnchor = screenAnchor(work.Screens[i-1].ID)
		}
		if i < len(work.Screens)-1 {
			sc.nextAnchor = screenAnchor(work.Screens[i+1].ID)
		}

		section, lbs := sy.buildScreen(device, sc)
		lightboxes = append(lightboxes, lbs...)

		if i == musicScreen {
			attachAudio(section, work.ResolveMedia(work.Config.MusicID))
		} else if musicScreen < 0 && s.MusicID != "" {
			if item, ok := work.MediaFor(s.MusicID); ok && item.Data != "" {
				attachAudio(section, item.Data)
			}
		}

		// A childless section would serialize self-closed and break parsing.
		if len(section.Child) == 0 {
			section.SetText("​")
		}
	}

	// Lightboxes are viewport modals independent of screen flow and live
	// after the whole screen sequence.
	for _, lb := range lightboxes {
		device.AddChild(lb)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("unable to serialize document: %w", err)
	}
	log.Debug("Compiled document",
		zap.Int("screens", len(work.Screens)),
		zap.Int("lightboxes", len(lightboxes)),
		zap.Int("bytes", len(out)))
	return out, nil
}

// musicTargetIndex picks the screen hosting the single global audio element:
// the first overlay screen if one exists, else the first screen. Returns -1
// when no global music is configured, which enables per-screen music.
func musicTargetIndex(p *project.Project) int {
	if p.Config.MusicID == "" {
		return -1
	}
	if _, ok := p.MediaFor(p.Config.MusicID); !ok {
		return -1
	}
	for i := range p.Screens {
		if p.Screens[i].Type == project.ScreenTypeOverlay {
			return i
		}
	}
	return 0
}

func attachAudio(section *etree.Element, src string) {
	audio := section.CreateElement("audio")
	audio.CreateAttr("src", src)
	audio.CreateAttr("controls", "controls")
	audio.CreateAttr("autoplay", "autoplay")
	audio.CreateAttr("loop", "loop")
	audio.SetText("​")
}
