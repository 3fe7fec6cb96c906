// Package fontindex answers whether a character can be rendered by any of a
// set of fonts, and remembers which font supplied each character so the
// required glyph subset can be reported at the end of a run.
package fontindex
