package project

// Screen kind within the presentation flow.
// ENUM(overlay, content, navigation)
type ScreenType string

// Visual element kind.
// ENUM(text, image, video, sticker, button, gallery, shape, long-text)
type ElementType string

// Screen background kind.
// ENUM(solid, gradient, image, video)
type BackgroundType string

// Decorative particle overlay kind.
// ENUM(none, confetti, hearts, stars, fireworks, bubbles)
type OverlayKind string

// Media library asset kind.
// ENUM(image, video, audio)
type MediaKind string
