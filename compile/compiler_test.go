package compile

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/net/html"

	"lovemedo/project"
)

func contentScreen(id, title string) project.Screen {
	return project.Screen{
		ID:         id,
		Title:      title,
		Type:       project.ScreenTypeContent,
		Background: project.Background{Type: project.BackgroundTypeSolid, Value: "#223"},
		Elements: []project.ScreenElement{{
			ID:       id + "-t",
			Type:     project.ElementTypeText,
			Position: project.Point{X: 10, Y: 30},
			Size:     project.Size{Width: 80, Height: 20},
			Content:  "text on " + id,
		}},
	}
}

func mustCompile(t *testing.T, p *project.Project) string {
	t.Helper()
	out, err := Compile(p, "", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return out
}

func mustParseHTML(t *testing.T, doc string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}
	return node
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func TestCompileThreeContentScreens(t *testing.T) {
	p := &project.Project{
		Version: project.SchemaVersion,
		Config:  project.Config{Title: "Trip"},
		Screens: []project.Screen{
			contentScreen("s1", "One"),
			contentScreen("s2", "Two"),
			contentScreen("s3", "Three"),
		},
	}
	out := mustCompile(t, p)
	root := mustParseHTML(t, out)

	var sections []*html.Node
	var nextLinks []string
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.Data == "section" && hasClass(n, "screen") {
			sections = append(sections, n)
		}
		if n.Data == "a" && hasClass(n, "next-button") {
			nextLinks = append(nextLinks, attr(n, "href"))
		}
	})

	if len(sections) != 3 {
		t.Fatalf("expected 3 screens, got %d", len(sections))
	}
	if got := attr(sections[0], "id"); got != "screen-s1" {
		t.Fatalf("first screen anchor: %q", got)
	}
	if len(nextLinks) != 2 {
		t.Fatalf("expected exactly 2 forward links, got %d: %v", len(nextLinks), nextLinks)
	}
	if nextLinks[0] != "#screen-s2" || nextLinks[1] != "#screen-s3" {
		t.Fatalf("forward links mismatch: %v", nextLinks)
	}

	// default visibility of the first screen rides on document order
	if !strings.Contains(out, ".screen:first-of-type") {
		t.Fatal("stylesheet missing default-visible first screen rule")
	}
	if !strings.Contains(out, ".screen:target") {
		t.Fatal("stylesheet missing :target screen rule")
	}
}

func TestCompileGlobalMusicWinsOverPerScreen(t *testing.T) {
	s1 := contentScreen("s1", "One")
	s2 := contentScreen("s2", "Two")
	s2.MusicID = "m-screen"

	p := &project.Project{
		Config:  project.Config{Title: "x", MusicID: "m-global"},
		Screens: []project.Screen{s1, s2},
		MediaLibrary: map[string]project.MediaItem{
			"m-global": {ID: "m-global", Kind: project.MediaKindAudio, Data: "data:audio/mpeg;base64,g"},
			"m-screen": {ID: "m-screen", Kind: project.MediaKindAudio, Data: "data:audio/mpeg;base64,s"},
		},
	}
	out := mustCompile(t, p)
	root := mustParseHTML(t, out)

	var audios []string
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "audio" {
			audios = append(audios, attr(n, "src"))
		}
	})
	if len(audios) != 1 {
		t.Fatalf("expected exactly one audio element, got %d", len(audios))
	}
	if audios[0] != "data:audio/mpeg;base64,g" {
		t.Fatalf("expected global music, got %q", audios[0])
	}
}

func TestCompileMusicPrefersOverlayScreen(t *testing.T) {
	p := &project.Project{
		Config: project.Config{Title: "x", MusicID: "m"},
		Screens: []project.Screen{
			contentScreen("s1", "One"),
			{ID: "s2", Type: project.ScreenTypeOverlay},
		},
		MediaLibrary: map[string]project.MediaItem{
			"m": {ID: "m", Kind: project.MediaKindAudio, Data: "data:audio/mpeg;base64,g"},
		},
	}
	out := mustCompile(t, p)
	root := mustParseHTML(t, out)

	found := false
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "section" && attr(n, "id") == "screen-s2" {
			walk(n, func(c *html.Node) {
				if c.Type == html.ElementNode && c.Data == "audio" {
					found = true
				}
			})
		}
	})
	if !found {
		t.Fatal("audio not attached to the overlay screen")
	}
}

func TestCompilePerScreenMusicWithoutGlobal(t *testing.T) {
	s1 := contentScreen("s1", "One")
	s1.MusicID = "m-screen"

	p := &project.Project{
		Config:  project.Config{Title: "x"},
		Screens: []project.Screen{s1},
		MediaLibrary: map[string]project.MediaItem{
			"m-screen": {ID: "m-screen", Kind: project.MediaKindAudio, Data: "data:audio/mpeg;base64,s"},
		},
	}
	out := mustCompile(t, p)

	if got := strings.Count(out, "<audio"); got != 1 {
		t.Fatalf("expected one per-screen audio element, got %d", got)
	}
}

func TestCompileSelfContained(t *testing.T) {
	p := &project.Project{
		Config: project.Config{Title: "x"},
		Screens: []project.Screen{{
			ID:   "s1",
			Type: project.ScreenTypeOverlay,
			Background: project.Background{
				Type:    project.BackgroundTypeGradient,
				Value:   "linear-gradient(#111,#333)",
				Overlay: project.OverlayKindHearts,
			},
			Elements: []project.ScreenElement{{
				ID:      "i1",
				Type:    project.ElementTypeImage,
				Size:    project.Size{Width: 50, Height: 40},
				Content: "m1",
			}},
		}},
		MediaLibrary: map[string]project.MediaItem{
			"m1": {ID: "m1", Kind: project.MediaKindImage, Data: "data:image/png;base64,AA"},
		},
	}
	out := mustCompile(t, p)
	root := mustParseHTML(t, out)

	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.Data == "script" {
			t.Fatal("compiled document contains script")
		}
		if src := attr(n, "src"); src != "" && !strings.HasPrefix(src, "data:") {
			t.Fatalf("external resource reference: %q", src)
		}
		if href := attr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
			t.Fatalf("external link reference: %q", href)
		}
	})

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %q", out[:min(len(out), 40)])
	}
}

func TestCompileLightboxesFollowScreens(t *testing.T) {
	p := &project.Project{
		Config: project.Config{Title: "x"},
		Screens: []project.Screen{
			{
				ID:   "s1",
				Type: project.ScreenTypeOverlay,
				Elements: []project.ScreenElement{{
					ID:      "i1",
					Type:    project.ElementTypeImage,
					Size:    project.Size{Width: 50, Height: 40},
					Content: "m1",
				}},
			},
			contentScreen("s2", "Two"),
		},
	}
	out := mustCompile(t, p)
	root := mustParseHTML(t, out)

	var order []string
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.Data == "section" && hasClass(n, "screen") {
			order = append(order, "screen")
		}
		if n.Data == "div" && hasClass(n, "lightbox") {
			order = append(order, "lightbox")
		}
	})
	if len(order) != 3 {
		t.Fatalf("unexpected block count: %v", order)
	}
	if order[0] != "screen" || order[1] != "screen" || order[2] != "lightbox" {
		t.Fatalf("lightboxes must follow the screen sequence: %v", order)
	}
}

func TestCompileRejectsEmptyProject(t *testing.T) {
	p := &project.Project{Config: project.Config{Title: "x"}}
	if _, err := Compile(p, "", zaptest.NewLogger(t)); err == nil {
		t.Fatal("expected error for project without screens")
	}
}

func TestCompileDoesNotMutateInput(t *testing.T) {
	p := &project.Project{
		Config: project.Config{Title: "x"},
		Screens: []project.Screen{{
			ID:   "s1",
			Type: project.ScreenTypeContent,
			Elements: []project.ScreenElement{
				{ID: "a", Type: project.ElementTypeText, Position: project.Point{X: 10, Y: 10}, Size: project.Size{Width: 80, Height: 30}},
				{ID: "b", Type: project.ElementTypeText, Position: project.Point{X: 10, Y: 15}, Size: project.Size{Width: 80, Height: 30}},
			},
		}},
	}
	mustCompile(t, p)

	if p.Screens[0].Elements[1].Position.Y != 15 {
		t.Fatalf("layout pre-pass leaked into caller document: %v", p.Screens[0].Elements[1].Position.Y)
	}
}

func TestCompileEmbedsFontCSS(t *testing.T) {
	p := &project.Project{
		Config:  project.Config{Title: "x"},
		Screens: []project.Screen{contentScreen("s1", "One")},
	}
	fontCSS := "@font-face {\n  font-family: \"Fancy\";\n  src: url(\"data:font/woff2;base64,AA\");\n}\n"
	out, err := Compile(p, fontCSS, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(out, "@font-face") || !strings.Contains(out, "Fancy") {
		t.Fatal("font css missing from output")
	}
}
