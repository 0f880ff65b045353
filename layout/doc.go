// Package layout turns a paragraph of codepoints into wrapped lines of
// glyphs.
//
// Layout runs in three passes. SolveLineBreak marks break opportunities,
// SolveBidi resolves the visual run order and SolveLayout splits runs by
// script and font, shapes them and wraps the glyphs into lines. After
// SolveLayout every codepoint that starts a glyph cluster is mapped back
// to its line and glyph range through its CPInfo.
package layout
