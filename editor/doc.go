// Package editor provides a Bubble Tea component for drawing a glyph backed
// by the glyph package.
//
// The component turns keys and mouse clicks into intents (toggle a pixel,
// switch width, zoom, clear, export, import), renders the pixel grid with an
// optional row/column ruler and a status line, and exchanges hex-token text
// with a host-supplied clipboard.
package editor
