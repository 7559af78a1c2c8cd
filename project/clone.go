package project

// Deep copy functions for project structures. The export pipeline never
// mutates the caller's document - every transformation (layout re-flow,
// media inlining) runs on a Clone.

import "encoding/json"

// Clone creates a deep copy of the project.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Config = cloneConfig(&p.Config)
	clone.Screens = cloneScreens(p.Screens)
	clone.MediaLibrary = cloneMediaLibrary(p.MediaLibrary)
	return &clone
}

func cloneConfig(c *Config) Config {
	out := *c
	if c.Theme != nil {
		out.Theme = make(map[string]string, len(c.Theme))
		for k, v := range c.Theme {
			out.Theme[k] = v
		}
	}
	return out
}

func cloneScreens(screens []Screen) []Screen {
	if screens == nil {
		return nil
	}
	result := make([]Screen, len(screens))
	for i := range screens {
		result[i] = screens[i]
		result[i].Elements = cloneElements(screens[i].Elements)
	}
	return result
}

func cloneElements(elements []ScreenElement) []ScreenElement {
	if elements == nil {
		return nil
	}
	result := make([]ScreenElement, len(elements))
	for i := range elements {
		result[i] = elements[i]
		result[i].Styles = cloneStyles(&elements[i].Styles)
		result[i].Meta = cloneMeta(&elements[i].Meta)
	}
	return result
}

func cloneStyles(s *Styles) Styles {
	out := *s
	if s.Opacity != nil {
		v := *s.Opacity
		out.Opacity = &v
	}
	return out
}

func cloneMeta(m *Meta) Meta {
	out := Meta{}
	if m.Button != nil {
		v := *m.Button
		out.Button = &v
	}
	if m.Sticker != nil {
		v := *m.Sticker
		out.Sticker = &v
	}
	if m.Caption != nil {
		v := *m.Caption
		out.Caption = &v
	}
	if m.extra != nil {
		out.extra = make(map[string]json.RawMessage, len(m.extra))
		for k, v := range m.extra {
			out.extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

func cloneMediaLibrary(lib map[string]MediaItem) map[string]MediaItem {
	if lib == nil {
		return nil
	}
	result := make(map[string]MediaItem, len(lib))
	for k, v := range lib {
		result[k] = v
	}
	return result
}
