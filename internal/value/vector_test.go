package value

import "testing"

func TestVectorIntAt(t *testing.T) {
	v := NewVector([]Int{10, 20, 30})
	got, ok := v.At(1)
	if !ok || got != 20 {
		t.Errorf("At(1) = %v,%v want 20,true", got, ok)
	}
	if _, ok := v.At(5); ok {
		t.Errorf("out of bounds At should fail")
	}
	if _, ok := v.At(IntNA); ok {
		t.Errorf("N/A index At should fail")
	}
}

func TestVectorNA(t *testing.T) {
	v := NAVector[Int]()
	if !v.IsNA() {
		t.Errorf("NAVector should be N/A")
	}
	if _, ok := v.At(0); ok {
		t.Errorf("indexing an N/A vector should fail")
	}
}

func TestVectorBoolPackingAndGet(t *testing.T) {
	bits := []bool{true, false, true, true, false}
	v := NewVectorBool(bits)
	if v.Len() != Int(len(bits)) {
		t.Fatalf("Len() = %v, want %d", v.Len(), len(bits))
	}
	for i, b := range bits {
		want := BoolOf(b)
		if got := v.Get(Int(i)); got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVectorBoolOutOfBoundsIsNA(t *testing.T) {
	v := NewVectorBool([]bool{true, false})
	if got := v.Get(5); got != NA {
		t.Errorf("out of bounds Get = %v, want NA", got)
	}
	if got := VectorBoolNA.Get(0); got != NA {
		t.Errorf("Get on N/A vector = %v, want NA", got)
	}
}

func TestVectorBoolMaxLen(t *testing.T) {
	bits := make([]bool, VectorBoolMaxLen)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	v := NewVectorBool(bits)
	if int(v.Len()) != VectorBoolMaxLen {
		t.Fatalf("Len() = %v, want %d", v.Len(), VectorBoolMaxLen)
	}
	if got := v.Get(0); got != True {
		t.Errorf("Get(0) = %v, want True", got)
	}
	if got := v.Get(VectorBoolMaxLen - 1); got != False {
		t.Errorf("Get(last) = %v, want False", got)
	}
}
