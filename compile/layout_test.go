package compile

import (
	"reflect"
	"testing"

	"lovemedo/project"
)

func el(id string, x, y, w, h float64) project.ScreenElement {
	return project.ScreenElement{
		ID:       id,
		Type:     project.ElementTypeText,
		Position: project.Point{X: x, Y: y},
		Size:     project.Size{Width: w, Height: h},
	}
}

func assertNoCollisions(t *testing.T, elements []project.ScreenElement) {
	t.Helper()
	for i := range elements {
		if elements[i].Type == project.ElementTypeSticker {
			continue
		}
		if b := elements[i].Position.Y + elements[i].Size.Height; b > layoutMaxBottom+1e-9 {
			t.Fatalf("element %s extends below working area: bottom=%v", elements[i].ID, b)
		}
		for j := i + 1; j < len(elements); j++ {
			if elements[j].Type == project.ElementTypeSticker {
				continue
			}
			if elementsCollide(&elements[i], &elements[j]) {
				t.Fatalf("elements %s and %s overlap after reflow", elements[i].ID, elements[j].ID)
			}
		}
	}
}

func TestResolveLayoutEmpty(t *testing.T) {
	if got := ResolveLayout(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestResolveLayoutNonOverlappingPassesThrough(t *testing.T) {
	in := []project.ScreenElement{
		el("a", 10, 5, 80, 20),
		el("b", 10, 40, 80, 20),
		el("c", 10, 70, 80, 20),
	}
	out := ResolveLayout(in)
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("clean layout was modified:\n in: %+v\nout: %+v", in, out)
	}
}

func TestResolveLayoutSeparatesOverlaps(t *testing.T) {
	in := []project.ScreenElement{
		el("a", 10, 10, 80, 30),
		el("b", 10, 20, 80, 30),
		el("c", 10, 25, 80, 30),
	}
	out := ResolveLayout(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(out))
	}
	assertNoCollisions(t, out)
}

func TestResolveLayoutIdempotent(t *testing.T) {
	in := []project.ScreenElement{
		el("a", 5, 80, 40, 10),
		el("b", 20, 10, 60, 40),
		el("c", 30, 15, 60, 40),
	}
	once := ResolveLayout(in)
	twice := ResolveLayout(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed resolved layout:\n once: %+v\ntwice: %+v", once, twice)
	}
}

func TestResolveLayoutKeepsRelativeOrder(t *testing.T) {
	in := []project.ScreenElement{
		el("top", 10, 10, 80, 30),
		el("bottom", 10, 15, 80, 30),
	}
	out := ResolveLayout(in)
	if out[0].ID != "top" || out[1].ID != "bottom" {
		t.Fatalf("relative order changed: %s, %s", out[0].ID, out[1].ID)
	}
	if out[1].Position.Y <= out[0].Position.Y {
		t.Fatalf("expected second element pushed below first: %v vs %v", out[1].Position.Y, out[0].Position.Y)
	}
}

func TestResolveLayoutStickersPassThrough(t *testing.T) {
	sticker := project.ScreenElement{
		ID:       "s",
		Type:     project.ElementTypeSticker,
		Position: project.Point{X: 40, Y: 12},
		Size:     project.Size{Width: 20, Height: 20},
	}
	in := []project.ScreenElement{
		el("a", 10, 10, 80, 30),
		sticker,
		el("b", 10, 15, 80, 30),
	}
	out := ResolveLayout(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(out))
	}
	got := out[len(out)-1]
	if got.ID != "s" || got.Position != sticker.Position || got.Size != sticker.Size {
		t.Fatalf("sticker was modified: %+v", got)
	}
}

func TestResolveLayoutClampsToWorkingArea(t *testing.T) {
	in := []project.ScreenElement{
		el("a", 10, 90, 80, 30),
	}
	out := ResolveLayout(in)
	if b := out[0].Position.Y + out[0].Size.Height; b > layoutMaxBottom+1e-9 {
		t.Fatalf("element extends below working area: bottom=%v", b)
	}
	if out[0].Size.Height < layoutMinHeight {
		t.Fatalf("element shrunk below minimum height: %v", out[0].Size.Height)
	}
}

func TestResolveLayoutDenseStack(t *testing.T) {
	var in []project.ScreenElement
	for i := 0; i < 4; i++ {
		in = append(in, el(string(rune('a'+i)), 10, 30, 80, 20))
	}
	out := ResolveLayout(in)
	assertNoCollisions(t, out)
}
