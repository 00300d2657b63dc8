package value

import "bytes"

// Text is a borrowed byte string: a pointer into storage the caller
// guarantees outlives the Text, plus a size that reuses Int's N/A
// encoding so an N/A size means an N/A Text without a separate flag.
type Text struct {
	data []byte
	size Int
}

var TextNA = Text{size: IntNA}

// NewText borrows data; it does not copy. Callers (column storage, the
// constant-node builder) are responsible for keeping the backing array
// alive for as long as the Text is used.
func NewText(data []byte) Text {
	return Text{data: data, size: Int(len(data))}
}

func (t Text) IsNA() bool { return t.size.IsNA() }

func (t Text) Len() Int { return t.size }

// Bytes returns the borrowed slice, or nil for N/A.
func (t Text) Bytes() []byte {
	if t.IsNA() {
		return nil
	}
	return t.data[:int(t.size)]
}

func (t Text) compare(o Text) int {
	return bytes.Compare(t.Bytes(), o.Bytes())
}

func (t Text) Equal(o Text) Bool {
	if t.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(t.compare(o) == 0)
}

func (t Text) NotEqual(o Text) Bool { return t.Equal(o).Not() }

func (t Text) Less(o Text) Bool {
	if t.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(t.compare(o) < 0)
}

func (t Text) LessEqual(o Text) Bool {
	if t.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(t.compare(o) <= 0)
}

func (t Text) Greater(o Text) Bool { return o.Less(t) }

func (t Text) GreaterEqual(o Text) Bool { return o.LessEqual(t) }

func (t Text) StartsWith(prefix Text) Bool {
	if t.IsNA() || prefix.IsNA() {
		return NA
	}
	return BoolOf(bytes.HasPrefix(t.Bytes(), prefix.Bytes()))
}

func (t Text) EndsWith(suffix Text) Bool {
	if t.IsNA() || suffix.IsNA() {
		return NA
	}
	return BoolOf(bytes.HasSuffix(t.Bytes(), suffix.Bytes()))
}

func (t Text) Contains(sub Text) Bool {
	if t.IsNA() || sub.IsNA() {
		return NA
	}
	return BoolOf(bytes.Contains(t.Bytes(), sub.Bytes()))
}

// Match is total byte equality treating two N/A texts as equal, used by
// indexing/hashing. A non-N/A Text never matches an N/A one.
func (t Text) Match(o Text) bool {
	if t.IsNA() != o.IsNA() {
		return false
	}
	if t.IsNA() {
		return true
	}
	return t.compare(o) == 0
}

func (t Text) Unmatch(o Text) bool { return !t.Match(o) }

func (t Text) String() string {
	if t.IsNA() {
		return "N/A"
	}
	return string(t.Bytes())
}
