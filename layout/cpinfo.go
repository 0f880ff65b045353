package layout

// Flags describe the layout state of a codepoint.
type Flags uint8

const (
	// FlagRTL is set when the codepoint was laid out right-to-left.
	FlagRTL Flags = 1 << iota
	// FlagCanBreak is set when a line may start at the codepoint.
	FlagCanBreak
	// FlagMapped is set when the codepoint starts a glyph cluster. Line,
	// Start and Len are only meaningful when it is set.
	FlagMapped
)

// CPInfo is a codepoint and its position in the laid out paragraph.
type CPInfo struct {
	Codepoint rune
	Flags     Flags
	// Line is the index of the line holding the cluster.
	Line int
	// Start is the index of the cluster's first glyph in visual order.
	Start int
	// Len is the number of glyphs in the cluster.
	Len int
}

// Mapped reports whether the codepoint starts a glyph cluster.
func (c CPInfo) Mapped() bool { return c.Flags&FlagMapped != 0 }

// RTL reports whether the codepoint was laid out right-to-left.
func (c CPInfo) RTL() bool { return c.Flags&FlagRTL != 0 }

// CanBreak reports whether a line may start at the codepoint.
func (c CPInfo) CanBreak() bool { return c.Flags&FlagCanBreak != 0 }
