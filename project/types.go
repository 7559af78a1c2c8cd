// Package project defines the gift presentation document model shared by the
// editor and the export compiler. The compiler consumes it read-only; every
// transformation during export works on a Clone.
package project

import (
	"encoding/json"
	"strings"
)

// SchemaVersion is the current project document schema.
const SchemaVersion = 1

// Project is the root aggregate of a gift presentation.
type Project struct {
	Version      int                  `json:"version"`
	ID           string               `json:"id"`
	CreatedAt    int64                `json:"createdAt,omitempty"`
	UpdatedAt    int64                `json:"updatedAt,omitempty"`
	Config       Config               `json:"config"`
	Screens      []Screen             `json:"screens"`
	MediaLibrary map[string]MediaItem `json:"mediaLibrary,omitempty"`
}

// Config carries project level presentation settings.
type Config struct {
	Title   string            `json:"title"`
	Theme   map[string]string `json:"theme,omitempty"`
	MusicID string            `json:"musicId,omitempty"`
}

// Screen is one navigable page of the presentation. Navigation order is
// implicit: "previous"/"next" are the array-adjacent screens.
type Screen struct {
	ID         string          `json:"id"`
	Title      string          `json:"title,omitempty"`
	Type       ScreenType      `json:"type"`
	Background Background      `json:"background"`
	Elements   []ScreenElement `json:"elements"`
	MusicID    string          `json:"musicId,omitempty"`
}

// Background describes the full-screen backdrop of a screen.
type Background struct {
	Type       BackgroundType `json:"type"`
	Value      string         `json:"value,omitempty"`
	Overlay    OverlayKind    `json:"overlay,omitempty"`
	Transition string         `json:"transition,omitempty"`
}

// Point is a position in percent of the containing screen, 0-100 on both axes.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an extent in percent of the containing screen.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultZIndex is the stacking order applied when styles carry none.
const DefaultZIndex = 10

// Styles is the visual styling of an element. Zero values mean "inherit the
// theme default" and are omitted from JSON.
type Styles struct {
	Color        string   `json:"color,omitempty"`
	Background   string   `json:"background,omitempty"`
	FontFamily   string   `json:"fontFamily,omitempty"`
	FontSize     float64  `json:"fontSize,omitempty"`
	FontWeight   string   `json:"fontWeight,omitempty"`
	Align        string   `json:"align,omitempty"`
	BorderRadius float64  `json:"borderRadius,omitempty"`
	Rotation     float64  `json:"rotation,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	ZIndex       int      `json:"zIndex,omitempty"`
	Shadow       bool     `json:"shadow,omitempty"`
	FrameColor   string   `json:"frameColor,omitempty"`
}

// EffectiveZIndex resolves the stacking order with the editor default.
func (s *Styles) EffectiveZIndex() int {
	if s.ZIndex == 0 {
		return DefaultZIndex
	}
	return s.ZIndex
}

// ScreenElement is a single positioned visual unit on a screen.
//
// Content meaning depends on Type: literal text for text/long-text/sticker,
// a media-id (or literal URL fallback) for image/video, a JSON array of
// media-ids for gallery, a label for button.
type ScreenElement struct {
	ID       string      `json:"id"`
	Type     ElementType `json:"type"`
	Position Point       `json:"position"`
	Size     Size        `json:"size"`
	Content  string      `json:"content,omitempty"`
	Styles   Styles      `json:"styles,omitzero"`
	Meta     Meta        `json:"metadata,omitzero"`
}

// Navigation targets understood by button metadata besides explicit screen ids.
const (
	NavNext = "next"
	NavBack = "back"
)

// ButtonMeta configures navigation buttons.
type ButtonMeta struct {
	NavigateTo string `json:"navigateTo,omitempty"`
}

// IsNext reports whether the button is a forward-navigation control. Such
// buttons on content screens only customize the auto-generated next button
// and are excluded from normal element rendering.
func (b *ButtonMeta) IsNext() bool {
	return b != nil && b.NavigateTo == NavNext
}

// StickerMeta configures sticker elements.
type StickerMeta struct {
	Glyph string `json:"glyph,omitempty"`
}

// CaptionMeta carries optional captions and framing for media elements.
type CaptionMeta struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Frame    string `json:"frame,omitempty"`
}

// Meta is the typed replacement for the editor's free-form metadata bag.
// Variants for keys we understand are decoded eagerly; everything else is
// kept raw so a document survives export/import byte-for-byte in meaning.
type Meta struct {
	Button  *ButtonMeta
	Sticker *StickerMeta
	Caption *CaptionMeta

	extra map[string]json.RawMessage
}

// metaKnownKeys lists keys owned by the typed variants above.
var metaKnownKeys = map[string]bool{
	"navigateTo": true,
	"glyph":      true,
	"title":      true,
	"subtitle":   true,
	"frame":      true,
}

// IsZero reports whether the metadata carries nothing.
func (m Meta) IsZero() bool {
	return m.Button == nil && m.Sticker == nil && m.Caption == nil && len(m.extra) == 0
}

// UnmarshalJSON decodes known keys into their variants and retains the rest.
func (m *Meta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pick := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		return json.Unmarshal(v, dst)
	}

	var bm ButtonMeta
	if err := pick("navigateTo", &bm.NavigateTo); err != nil {
		return err
	}
	if bm.NavigateTo != "" {
		m.Button = &bm
	}

	var sm StickerMeta
	if err := pick("glyph", &sm.Glyph); err != nil {
		return err
	}
	if sm.Glyph != "" {
		m.Sticker = &sm
	}

	var cm CaptionMeta
	if err := pick("title", &cm.Title); err != nil {
		return err
	}
	if err := pick("subtitle", &cm.Subtitle); err != nil {
		return err
	}
	if err := pick("frame", &cm.Frame); err != nil {
		return err
	}
	if cm != (CaptionMeta{}) {
		m.Caption = &cm
	}

	for k, v := range raw {
		if metaKnownKeys[k] {
			continue
		}
		if m.extra == nil {
			m.extra = make(map[string]json.RawMessage)
		}
		m.extra[k] = v
	}
	return nil
}

// MarshalJSON reassembles the original flat metadata object.
func (m Meta) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.extra)+5)
	for k, v := range m.extra {
		out[k] = v
	}
	if m.Button != nil && m.Button.NavigateTo != "" {
		out["navigateTo"] = m.Button.NavigateTo
	}
	if m.Sticker != nil && m.Sticker.Glyph != "" {
		out["glyph"] = m.Sticker.Glyph
	}
	if m.Caption != nil {
		if m.Caption.Title != "" {
			out["title"] = m.Caption.Title
		}
		if m.Caption.Subtitle != "" {
			out["subtitle"] = m.Caption.Subtitle
		}
		if m.Caption.Frame != "" {
			out["frame"] = m.Caption.Frame
		}
	}
	return json.Marshal(out)
}

// MediaItem wraps a single binary asset in the project media library.
//
// Data is either an embeddable literal (data: URI) or a transient reference
// (blob handle or remote URL). The asset inliner converts every item to a
// literal before compilation runs.
type MediaItem struct {
	ID       string    `json:"id"`
	Kind     MediaKind `json:"kind"`
	Filename string    `json:"filename,omitempty"`
	MimeType string    `json:"mimeType,omitempty"`
	Data     string    `json:"data"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}

// Embedded reports whether the item already carries an embeddable literal.
func (m *MediaItem) Embedded() bool {
	return strings.HasPrefix(m.Data, "data:")
}

// ResolveMedia maps a content reference to an embeddable source. Unresolved
// references are returned verbatim as a best-effort literal fallback.
func (p *Project) ResolveMedia(ref string) string {
	if item, ok := p.MediaLibrary[ref]; ok && item.Data != "" {
		return item.Data
	}
	return ref
}

// MediaFor returns the library item behind a reference, if any.
func (p *Project) MediaFor(ref string) (MediaItem, bool) {
	item, ok := p.MediaLibrary[ref]
	return item, ok
}

// GalleryItems decodes gallery element content. Content that is not a valid
// JSON array degrades to a single-item list holding the raw string.
func (e *ScreenElement) GalleryItems() []string {
	var ids []string
	if err := json.Unmarshal([]byte(e.Content), &ids); err != nil || ids == nil {
		if strings.TrimSpace(e.Content) == "" {
			return nil
		}
		return []string{e.Content}
	}
	return ids
}

// ScreenByID finds a screen by id.
func (p *Project) ScreenByID(id string) (*Screen, bool) {
	for i := range p.Screens {
		if p.Screens[i].ID == id {
			return &p.Screens[i], true
		}
	}
	return nil, false
}

// NavigationScreen returns the first navigation-type screen, if any.
func (p *Project) NavigationScreen() (*Screen, bool) {
	for i := range p.Screens {
		if p.Screens[i].Type == ScreenTypeNavigation {
			return &p.Screens[i], true
		}
	}
	return nil, false
}
