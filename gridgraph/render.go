package gridgraph

import "strings"

// Glyphs used by Render.
const (
	glyphBlocked = '#'
	glyphFloor   = '.'
	glyphSlow    = '~'
	glyphStart   = 'S'
	glyphEnd     = 'E'
	glyphPath    = '*'
)

// Render draws the grid one row per line, layers separated by a blank line.
// Cells on path (other than the markers) are drawn as '*'.
//
//	# blocked  . floor  ~ slow terrain  S start  E end
func (g *Grid) Render(path []int) string {
	onPath := make(map[int]struct{}, len(path))
	for _, i := range path {
		onPath[i] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow(len(g.Cells) + len(g.Cells)/g.Stride + g.Layers())
	for i, l := range g.Cells {
		x, y, layer := g.Coordinate(i)
		if x == 0 && (y > 0 || layer > 0) {
			sb.WriteByte('\n')
			if y == 0 {
				sb.WriteByte('\n')
			}
		}
		sb.WriteByte(glyph(l, onPath, i))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func glyph(l Label, onPath map[int]struct{}, i int) byte {
	switch l {
	case Start:
		return glyphStart
	case End:
		return glyphEnd
	}
	if _, ok := onPath[i]; ok {
		return glyphPath
	}
	switch l {
	case Air:
		return glyphBlocked
	case PackedIce, SoulSand:
		return glyphSlow
	}

	return glyphFloor
}
