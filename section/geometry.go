package section

import (
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// Geometry is the decoded geometry table (section kind 3): the bit width
// of every handle, in handle order starting at handle 1.
//
// A stored width of 0 means the handle is real-valued (an 8-byte IEEE-754
// double, 64 bits wide); WidthFor resolves this to 64 for callers so they
// never see the raw 0 sentinel.
type Geometry struct {
	Widths []uint64
}

// ParseGeometry decodes a geometry section's payload: a dense run of
// LEB128-encoded widths, one per handle.
func ParseGeometry(payload []byte) (Geometry, error) {
	var g Geometry

	offset := 0
	for offset < len(payload) {
		width, next, err := leb128.ReadUvarint(payload, offset)
		if err != nil {
			return Geometry{}, errs.ErrCorruptBlock
		}

		g.Widths = append(g.Widths, width)
		offset = next
	}

	return g, nil
}

// WidthFor returns the bit width of handle, resolving the real-valued
// sentinel (a stored width of 0) to 64. Handles beyond the table (files
// with no geometry section, or fewer geometry entries than variables)
// resolve to 0, the caller's signal that no per-handle width is known.
func (g Geometry) WidthFor(handle uint64) uint64 {
	idx := handle - 1
	if handle == 0 || idx >= uint64(len(g.Widths)) {
		return 0
	}

	w := g.Widths[idx]
	if w == 0 {
		return 64
	}

	return w
}
