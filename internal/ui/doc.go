// Package ui renders styled terminal output for scx with lipgloss.
//
// A [Palette] holds the named styles. [RenderUser] and [RenderUpload] format API results as short labelled cards.
// [Plain] strips styling, used when output is not a terminal or when tests compare text.
package ui
