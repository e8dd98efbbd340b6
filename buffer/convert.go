package buffer

import "sort"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a document offset into a (row, col) position.
// With OffsetError, offsets outside [0, Len()] report false.
func (b *Buffer) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.length, mode)
	if !ok {
		return Pos{}, false
	}
	return offsetToPos(b.lines, b.starts, off), true
}

// OffsetFromPos converts a position into a document offset. With
// OffsetError, positions outside the document report false.
func (b *Buffer) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}
	return b.starts[pos.Row] + pos.Col, true
}

func clampOffset(off, hi int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > hi {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, hi), true
	default:
		return 0, false
	}
}

func offsetToPos(lines [][]rune, starts []int, off int) Pos {
	row := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	row = clampInt(row, 0, len(lines)-1)
	return Pos{Row: row, Col: clampInt(off-starts[row], 0, len(lines[row]))}
}
