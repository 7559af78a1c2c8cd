package compile

import (
	"sort"

	"lovemedo/project"
)

// Layout constants, all in percent of the screen.
const (
	// layoutTolerance is the vertical distance within which two elements are
	// treated as one row and ordered by x instead.
	layoutTolerance = 5.0
	// layoutSpacing is the minimum vertical gap enforced between elements
	// whose horizontal spans overlap.
	layoutSpacing = 3.0
	// layoutShrink reduces element height before placement to leave
	// breathing room on dense layouts.
	layoutShrink = 0.85
	// layoutMaxBottom is the lower bound of the working area. No resolved
	// element may extend below it.
	layoutMaxBottom = 95.0
	// layoutMinHeight is the floor below which height is never shrunk; the
	// element is relocated upward instead.
	layoutMinHeight = 5.0
)

// ResolveLayout re-flows elements destined for a content screen into a
// non-overlapping vertical sequence.
//
// Stickers are free-floating and permitted to overlap: they pass through
// untouched and are appended after the flowed elements. Everything else is
// walked top to bottom; an element whose horizontal span collides with an
// already placed one is pushed below it with a minimum gap, shrunk to fit
// the working area when necessary.
//
// The function is pure and idempotent: an input without collisions (which
// includes any output of this function) passes through unchanged.
func ResolveLayout(elements []project.ScreenElement) []project.ScreenElement {
	if len(elements) == 0 {
		return nil
	}

	var flowed, stickers []project.ScreenElement
	for _, e := range elements {
		if e.Type == project.ElementTypeSticker {
			stickers = append(stickers, e)
		} else {
			flowed = append(flowed, e)
		}
	}

	if !needsReflow(flowed) {
		return append(append([]project.ScreenElement(nil), flowed...), stickers...)
	}

	// Work on an index permutation so the output keeps the original relative
	// order while placement happens in visual (top to bottom) order.
	order := make([]int, len(flowed))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := &flowed[order[a]], &flowed[order[b]]
		dy := ea.Position.Y - eb.Position.Y
		if dy < -layoutTolerance {
			return true
		}
		if dy > layoutTolerance {
			return false
		}
		return ea.Position.X < eb.Position.X
	})

	out := make([]project.ScreenElement, len(flowed))
	copy(out, flowed)

	type placed struct {
		x, w, top, h float64
	}
	var done []placed

	for _, idx := range order {
		e := &out[idx]

		top := e.Position.Y
		h := e.Size.Height * layoutShrink

		// Push below the lowest already placed element sharing our columns.
		maxBottom, blocked := -1.0, false
		for _, p := range done {
			if spansOverlap(e.Position.X, e.Size.Width, p.x, p.w) {
				if b := p.top + p.h; b > maxBottom {
					maxBottom, blocked = b, true
				}
			}
		}
		if blocked && top < maxBottom+layoutSpacing {
			top = maxBottom + layoutSpacing
		}

		// Keep the bottom edge inside the working area.
		if top+h > layoutMaxBottom {
			fitted := layoutMaxBottom - top
			if fitted >= layoutMinHeight {
				h = fitted
			} else {
				// Too little room left to shrink into - move up instead.
				top = layoutMaxBottom - h
				if top < 0 {
					top = 0
					if h > layoutMaxBottom {
						h = layoutMaxBottom
					}
				}
			}
		}

		e.Position.Y = top
		e.Size.Height = h
		done = append(done, placed{e.Position.X, e.Size.Width, top, h})
	}

	return append(out, stickers...)
}

// needsReflow reports whether any pair of elements collides or any element
// escapes the working area.
func needsReflow(elements []project.ScreenElement) bool {
	for i := range elements {
		if elements[i].Position.Y+elements[i].Size.Height > layoutMaxBottom {
			return true
		}
		for j := i + 1; j < len(elements); j++ {
			if elementsCollide(&elements[i], &elements[j]) {
				return true
			}
		}
	}
	return false
}

func elementsCollide(a, b *project.ScreenElement) bool {
	return spansOverlap(a.Position.X, a.Size.Width, b.Position.X, b.Size.Width) &&
		spansOverlap(a.Position.Y, a.Size.Height, b.Position.Y, b.Size.Height)
}

// spansOverlap reports whether two 1-D intervals intersect.
func spansOverlap(a, aw, b, bw float64) bool {
	return a < b+bw && b < a+aw
}
