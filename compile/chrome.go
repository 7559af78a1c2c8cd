package compile

import (
	"strconv"

	"github.com/beevik/etree"

	"lovemedo/project"
)

// Screen chrome: the fixed navigation furniture every content screen gets
// around its authored elements. Content elements occupy the safe-area band
// between the top navbar and the bottom next button.

// buildNavbar renders the top bar with a back control, the screen title and
// a shortcut to the navigation hub when the document has one.
func (sy *synthesizer) buildNavbar(section *etree.Element, sc screenContext) {
	bar := section.CreateElement("header")
	bar.CreateAttr("class", "navbar")

	back := bar.CreateElement("a")
	back.CreateAttr("class", "navbar-back")
	target := sc.prevAnchor
	if target == "" {
		// First screen: the control stays for visual stability but goes nowhere.
		target = sc.anchor
	}
	back.CreateAttr("href", "#"+target)
	back.SetText("‹")

	title := bar.CreateElement("span")
	title.CreateAttr("class", "navbar-title")
	if sc.screen.Title != "" {
		title.SetText(sc.screen.Title)
	} else {
		title.SetText("​")
	}

	if sc.navAnchor != "" {
		menu := bar.CreateElement("a")
		menu.CreateAttr("class", "navbar-menu")
		menu.CreateAttr("href", "#"+sc.navAnchor)
		menu.SetText("☰")
	} else {
		spacer := bar.CreateElement("span")
		spacer.CreateAttr("class", "navbar-menu")
		spacer.SetText("​")
	}
}

// buildNextButton renders the bottom forward-navigation control. A button
// element authored with a "next" target customizes the label and styling;
// the last screen gets no control at all.
func (sy *synthesizer) buildNextButton(section *etree.Element, sc screenContext) {
	if sc.nextAnchor == "" {
		return
	}

	label := "Next"
	var custom *project.ScreenElement
	for i := range sc.screen.Elements {
		el := &sc.screen.Elements[i]
		if el.Type == project.ElementTypeButton && el.Meta.Button.IsNext() {
			custom = el
			break
		}
	}
	if custom != nil && custom.Content != "" {
		label = custom.Content
	}

	link := section.CreateElement("a")
	link.CreateAttr("class", "next-button")
	link.CreateAttr("href", "#"+sc.nextAnchor)
	if custom != nil {
		if style := buttonStyle(&custom.Styles); style != "" {
			link.CreateAttr("style", style)
		}
	}
	link.SetText(label)
}

// buildScreenList renders the navigation hub: one pill link per screen, in
// document order, labelled by title with a positional fallback.
func (sy *synthesizer) buildScreenList(section *etree.Element, sc screenContext) {
	nav := section.CreateElement("nav")
	nav.CreateAttr("class", "screen-list")

	for i := range sy.p.Screens {
		s := &sy.p.Screens[i]
		link := nav.CreateElement("a")
		link.CreateAttr("class", "screen-pill")
		link.CreateAttr("href", "#"+screenAnchor(s.ID))
		if s.Title != "" {
			link.SetText(s.Title)
		} else {
			link.SetText("Screen " + strconv.Itoa(i+1))
		}
	}
}
