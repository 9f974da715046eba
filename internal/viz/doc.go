// Package viz renders column results in the terminal.
//
// Charts are drawn with asciigraph:
//
//   - [ProfileChart]: central profile with min/max and quartile envelopes
//   - [BreakthroughChart]: concentration against pore volumes
//
// Styles and colour themes use lipgloss and are shared with the live
// explorer in package tui.
package viz
