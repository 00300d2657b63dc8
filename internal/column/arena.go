package column

import "encoding/binary"

// header is the 64-bit per-row word spec.md §4.B defines for every
// variable-length column: the high 48 bits are a byte offset into the
// column's body arena, the low 16 bits are an inline size. A size of
// 0xFFFF is an escape meaning "the real size doesn't fit in 16 bits": the
// actual size is stored as an 8-byte little-endian word at offset,
// immediately followed by the payload.
type header uint64

const (
	inlineSizeEscape = 0xFFFF
	headerNA         = header(^uint64(0))
)

func makeHeader(offset uint64, inlineSize int) header {
	return header(offset<<16 | uint64(uint16(inlineSize)))
}

func (h header) offset() uint64 { return uint64(h) >> 16 }
func (h header) inlineSize() int { return int(uint64(h) & 0xFFFF) }

func (h header) isNA() bool { return h == headerNA }

// arena is the append-only body store backing every variable-length
// column. Overwriting a row leaks its old body — acceptable for an
// in-memory engine with no compaction in scope (spec.md §4.B).
type arena struct {
	body []byte
}

func (a *arena) write(data []byte) header {
	if len(data) < inlineSizeEscape {
		off := uint64(len(a.body))
		a.body = append(a.body, data...)
		return makeHeader(off, len(data))
	}
	off := uint64(len(a.body))
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], uint64(len(data)))
	a.body = append(a.body, sizeBuf[:]...)
	a.body = append(a.body, data...)
	return makeHeader(off, inlineSizeEscape)
}

func (a *arena) read(h header) []byte {
	off := h.offset()
	size := h.inlineSize()
	if size != inlineSizeEscape {
		return a.body[off : off+uint64(size)]
	}
	actual := binary.LittleEndian.Uint64(a.body[off : off+8])
	start := off + 8
	return a.body[start : start+actual]
}
