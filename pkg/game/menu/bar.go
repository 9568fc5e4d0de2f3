package menu

import "strings"

// Bar glyphs, in eighths of a cell
const (
	BlockFull = '█'
	BlockEnd  = '▏'
)

var blockEighths = [8]rune{0, '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// TextBar draws value out of limit as a bar of eighth-block glyphs, one cell
// per eight points, padded to the width of a full bar and closed with an end
// marker
func TextBar(value, limit int) string {
	value = min(max(value, 0), limit)

	width := (limit + 7) / 8
	used := value / 8

	var b strings.Builder
	b.WriteString(strings.Repeat(string(BlockFull), used))
	if part := value % 8; part > 0 {
		b.WriteRune(blockEighths[part])
		used++
	}
	b.WriteString(strings.Repeat(" ", width-used))
	b.WriteRune(BlockEnd)
	return b.String()
}
