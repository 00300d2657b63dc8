package index

import (
	"bytes"

	"github.com/groonga/grnxx-sub002/internal/value"
)

// compare returns -1, 0 or 1 comparing two Datums of the same data type, in
// the total order the tree index keys on. N/A values are never inserted
// (spec.md §4.C), so compare never has to special-case them.
func compare(dt value.DataType, a, b value.Datum) int {
	switch dt {
	case value.IntType:
		ai, bi := a.AsInt(), b.AsInt()
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	case value.FloatType:
		af, bf := a.AsFloat(), b.AsFloat()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case value.TextType:
		return bytes.Compare(a.AsText().Bytes(), b.AsText().Bytes())
	case value.BoolType:
		ab, bb := a.AsBool(), b.AsBool()
		switch {
		case ab == bb:
			return 0
		case ab == value.False:
			return -1
		default:
			return 1
		}
	case value.GeoPointType:
		ag, bg := a.AsGeoPoint(), b.AsGeoPoint()
		if ag.LatMs != bg.LatMs {
			if ag.LatMs < bg.LatMs {
				return -1
			}
			return 1
		}
		if ag.LonMs != bg.LonMs {
			if ag.LonMs < bg.LonMs {
				return -1
			}
			return 1
		}
		return 0
	default:
		return 0
	}
}
