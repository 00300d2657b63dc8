package column

import (
	"encoding/binary"
	"math"

	"github.com/groonga/grnxx-sub002/internal/value"
)

// Codecs for every variable-length type varColumn hosts: Text and the four
// Vector<T> element kinds other than Vector<Bool> (which is bit-packed and
// fixed-size, see vector_bool.go / fixed.go). Each codec serialises into a
// flat []byte the arena stores verbatim; decode only ever runs against
// bytes just read back from the same arena, so it can borrow rather than
// copy (mirroring Text's own borrowed-slice design, see value/text.go).

func encodeText(t value.Text) []byte {
	return append([]byte(nil), t.Bytes()...)
}

func decodeText(b []byte) value.Text {
	return value.NewText(b)
}

func isTextNA(t value.Text) bool { return t.IsNA() }

func encodeVectorInt(v value.Vector[value.Int]) []byte {
	elems := v.Slice()
	buf := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(e))
	}
	return buf
}

func decodeVectorInt(b []byte) value.Vector[value.Int] {
	n := len(b) / 8
	elems := make([]value.Int, n)
	for i := range elems {
		elems[i] = value.Int(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return value.NewVector(elems)
}

func isVectorIntNA(v value.Vector[value.Int]) bool { return v.IsNA() }

func encodeVectorFloat(v value.Vector[value.Float]) []byte {
	elems := v.Slice()
	buf := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(float64(e)))
	}
	return buf
}

func decodeVectorFloat(b []byte) value.Vector[value.Float] {
	n := len(b) / 8
	elems := make([]value.Float, n)
	for i := range elems {
		elems[i] = value.Float(math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:])))
	}
	return value.NewVector(elems)
}

func isVectorFloatNA(v value.Vector[value.Float]) bool { return v.IsNA() }

func encodeVectorGeoPoint(v value.Vector[value.GeoPoint]) []byte {
	elems := v.Slice()
	buf := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint32(buf[i*8:], uint32(e.LatMs))
		binary.LittleEndian.PutUint32(buf[i*8+4:], uint32(e.LonMs))
	}
	return buf
}

func decodeVectorGeoPoint(b []byte) value.Vector[value.GeoPoint] {
	n := len(b) / 8
	elems := make([]value.GeoPoint, n)
	for i := range elems {
		lat := int32(binary.LittleEndian.Uint32(b[i*8:]))
		lon := int32(binary.LittleEndian.Uint32(b[i*8+4:]))
		elems[i] = value.GeoPoint{LatMs: lat, LonMs: lon}
	}
	return value.NewVector(elems)
}

func isVectorGeoPointNA(v value.Vector[value.GeoPoint]) bool { return v.IsNA() }

// Vector<Text> nests variable-length elements: a uint32 count, then for
// each element a uint32 byte length followed by its bytes.
func encodeVectorText(v value.Vector[value.Text]) []byte {
	elems := v.Slice()
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(elems)))
	for _, e := range elems {
		eb := e.Bytes()
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(eb)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, eb...)
	}
	return buf
}

func decodeVectorText(b []byte) value.Vector[value.Text] {
	if len(b) < 4 {
		return value.NewVector([]value.Text{})
	}
	n := binary.LittleEndian.Uint32(b)
	elems := make([]value.Text, 0, n)
	pos := 4
	for i := uint32(0); i < n; i++ {
		l := int(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		elems = append(elems, value.NewText(b[pos:pos+l]))
		pos += l
	}
	return value.NewVector(elems)
}

func isVectorTextNA(v value.Vector[value.Text]) bool { return v.IsNA() }
