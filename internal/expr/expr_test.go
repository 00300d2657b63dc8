package expr

import (
	"testing"

	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

func evalDatum(t *testing.T, n Node, recs []record.Record) []value.Datum {
	t.Helper()
	out := make([]value.Datum, len(recs))
	if err := n.Evaluate(recs, out); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return out
}

func recsOf(ids ...int) []record.Record {
	out := make([]record.Record, len(ids))
	for i, id := range ids {
		out[i] = record.Record{RowID: value.Int(id)}
	}
	return out
}

// TestColumnFilterS1 is spec scenario S1: Table with rows 1..5, Bool
// column B = [_, T, F, T, F, T]; filter(B) on [1,2,3,4,5] yields [1,3,5].
func TestColumnFilterS1(t *testing.T) {
	tbl := column.NewTable("T")
	b := column.NewBoolColumn(tbl, "B")
	for i := 0; i < 5; i++ {
		tbl.InsertRow()
	}
	vals := []value.Bool{value.True, value.False, value.True, value.False, value.True}
	for i, v := range vals {
		if err := b.Set(value.Int(i+1), value.FromBool(v)); err != nil {
			t.Fatal(err)
		}
	}
	node := NewColumn(b)
	in := recsOf(1, 2, 3, 4, 5)
	scratch := make([]record.Record, len(in))
	copy(scratch, in)
	sl := record.SliceOf(scratch)
	n, err := node.Filter(in, &sl)
	if err != nil {
		t.Fatal(err)
	}
	want := []value.Int{1, 3, 5}
	if n != len(want) {
		t.Fatalf("n = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if sl.At(i).RowID != w {
			t.Errorf("sl.At(%d).RowID = %v, want %v", i, sl.At(i).RowID, w)
		}
	}
}

// TestThreeValuedAndS2 is spec scenario S2: A = [_,T,T,F,N], B = [_,T,N,T,N];
// evaluate(A AND B) over [1,2,3,4] = [T,N,F,N]; filter(A AND B) yields [1].
func TestThreeValuedAndS2(t *testing.T) {
	tbl := column.NewTable("T")
	a := column.NewBoolColumn(tbl, "A")
	b := column.NewBoolColumn(tbl, "B")
	for i := 0; i < 4; i++ {
		tbl.InsertRow()
	}
	aVals := []value.Bool{value.True, value.True, value.False, value.NA}
	bVals := []value.Bool{value.True, value.NA, value.True, value.NA}
	for i := range aVals {
		if err := a.Set(value.Int(i+1), value.FromBool(aVals[i])); err != nil {
			t.Fatal(err)
		}
		if err := b.Set(value.Int(i+1), value.FromBool(bVals[i])); err != nil {
			t.Fatal(err)
		}
	}
	and, err := NewBinary(LogicalAnd, NewColumn(a), NewColumn(b))
	if err != nil {
		t.Fatal(err)
	}
	in := recsOf(1, 2, 3, 4)
	out := evalDatum(t, and, in)
	want := []value.Bool{value.True, value.NA, value.False, value.NA}
	for i, w := range want {
		if out[i].AsBool() != w {
			t.Errorf("evaluate[%d] = %v, want %v", i, out[i].AsBool(), w)
		}
	}

	scratch := make([]record.Record, len(in))
	copy(scratch, in)
	sl := record.SliceOf(scratch)
	n, err := and.Filter(in, &sl)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || sl.At(0).RowID != 1 {
		t.Fatalf("filter = %d rows starting %v, want [1]", n, sl.At(0).RowID)
	}
}

// TestOverflowIsNAS3 is spec scenario S3: Int column X = [_, MaxInt64];
// evaluate(X + 1) over row 1 yields Int N/A.
func TestOverflowIsNAS3(t *testing.T) {
	tbl := column.NewTable("T")
	x, err := column.NewIntColumn(tbl, "X", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	tbl.InsertRow()
	if err := x.Set(1, value.FromInt(value.MaxValidInt)); err != nil {
		t.Fatal(err)
	}
	plus, err := NewBinary(Plus, NewColumn(x), NewConstant(value.FromInt(1)))
	if err != nil {
		t.Fatal(err)
	}
	out := evalDatum(t, plus, recsOf(1))
	if !out[0].AsInt().IsNA() {
		t.Fatalf("X+1 = %v, want N/A", out[0].AsInt())
	}
}

// TestDereferenceS5 is spec scenario S5: K = [_,10,20,30], R = [_,3,1,2];
// R.K over [1,2,3] evaluates to [30,10,20].
func TestDereferenceS5(t *testing.T) {
	tbl := column.NewTable("T")
	k, err := column.NewIntColumn(tbl, "K", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	r, err := column.NewIntColumn(tbl, "R", false, tbl)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tbl.InsertRow()
	}
	kVals := []value.Int{10, 20, 30}
	rVals := []value.Int{3, 1, 2}
	for i := range kVals {
		if err := k.Set(value.Int(i+1), value.FromInt(kVals[i])); err != nil {
			t.Fatal(err)
		}
		if err := r.Set(value.Int(i+1), value.FromInt(rVals[i])); err != nil {
			t.Fatal(err)
		}
	}
	deref, err := NewDereference(NewColumn(r), NewColumn(k))
	if err != nil {
		t.Fatal(err)
	}
	out := evalDatum(t, deref, recsOf(1, 2, 3))
	want := []value.Int{30, 10, 20}
	for i, w := range want {
		if out[i].AsInt() != w {
			t.Errorf("R.K[%d] = %v, want %v", i, out[i].AsInt(), w)
		}
	}
}

func TestLogicalOrShortCircuit(t *testing.T) {
	tbl := column.NewTable("T")
	a := column.NewBoolColumn(tbl, "A")
	bcol := column.NewBoolColumn(tbl, "B")
	for i := 0; i < 3; i++ {
		tbl.InsertRow()
	}
	for i := 1; i <= 3; i++ {
		if err := a.Set(value.Int(i), value.FromBool(value.False)); err != nil {
			t.Fatal(err)
		}
		if err := bcol.Set(value.Int(i), value.FromBool(value.BoolOf(i == 2))); err != nil {
			t.Fatal(err)
		}
	}
	or, err := NewBinary(LogicalOr, NewColumn(a), NewColumn(bcol))
	if err != nil {
		t.Fatal(err)
	}
	in := recsOf(1, 2, 3)
	scratch := make([]record.Record, len(in))
	copy(scratch, in)
	sl := record.SliceOf(scratch)
	n, err := or.Filter(in, &sl)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || sl.At(0).RowID != 2 {
		t.Fatalf("filter = %d rows starting %v, want [2]", n, sl.At(0).RowID)
	}
}

func TestSubscriptOutOfBoundsIsNA(t *testing.T) {
	tbl := column.NewTable("T")
	vi := column.NewVectorIntColumn(tbl, "V", nil)
	tbl.InsertRow()
	if err := vi.Set(1, value.FromVectorInt(value.NewVector([]value.Int{1, 2, 3}))); err != nil {
		t.Fatal(err)
	}
	sub, err := NewBinary(Subscript, NewColumn(vi), NewConstant(value.FromInt(10)))
	if err != nil {
		t.Fatal(err)
	}
	out := evalDatum(t, sub, recsOf(1))
	if !out[0].AsInt().IsNA() {
		t.Fatalf("out-of-bounds subscript = %v, want N/A", out[0].AsInt())
	}
}

func TestAdjustWritesScore(t *testing.T) {
	tbl := column.NewTable("T")
	f := column.NewFloatColumn(tbl, "F")
	tbl.InsertRow()
	if err := f.Set(1, value.FromFloat(3.5)); err != nil {
		t.Fatal(err)
	}
	node := NewColumn(f)
	recs := recsOf(1)
	if err := node.Adjust(recs); err != nil {
		t.Fatal(err)
	}
	if recs[0].Score != 3.5 {
		t.Fatalf("score = %v, want 3.5", recs[0].Score)
	}
}
