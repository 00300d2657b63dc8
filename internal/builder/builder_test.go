package builder

import (
	"testing"

	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/expr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

func TestBuildSimpleComparison(t *testing.T) {
	tbl := column.NewTable("Events")
	age, err := column.NewIntColumn(tbl, "age", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	id := tbl.InsertRow()
	if err := age.Set(id, value.FromInt(42)); err != nil {
		t.Fatal(err)
	}

	b := New(tbl)
	if err := b.PushColumn("age"); err != nil {
		t.Fatal(err)
	}
	b.PushConstant(value.FromInt(40))
	if err := b.PushOperatorBinary(expr.Greater); err != nil {
		t.Fatal(err)
	}
	e, err := b.Release(engineopts.DefaultExpressionOptions())
	if err != nil {
		t.Fatal(err)
	}
	if e.DataType() != value.BoolType {
		t.Fatalf("DataType() = %v, want Bool", e.DataType())
	}

	recs := record.NewWithCapacity(1)
	recs.Push(record.Record{RowID: id})
	var out []value.Datum
	if err := e.Evaluate(recs, &out); err != nil {
		t.Fatal(err)
	}
	if !out[0].AsBool().IsTrue() {
		t.Fatalf("age > 40 = %v, want true", out[0].AsBool())
	}
}

func TestReleaseFailsOnEmptyStack(t *testing.T) {
	tbl := column.NewTable("T")
	b := New(tbl)
	if _, err := b.Release(engineopts.DefaultExpressionOptions()); err == nil {
		t.Fatal("expected InvalidOperation releasing an empty stack")
	}
}

func TestBeginSubexpressionRejectsNonReference(t *testing.T) {
	tbl := column.NewTable("T")
	if _, err := column.NewIntColumn(tbl, "plain", false, nil); err != nil {
		t.Fatal(err)
	}
	b := New(tbl)
	if err := b.PushColumn("plain"); err != nil {
		t.Fatal(err)
	}
	if err := b.BeginSubexpression(); err == nil {
		t.Fatal("expected InvalidOperation opening a subexpression on a non-reference column")
	}
}

// TestDereferenceViaBuilder mirrors the builder-driven path of spec
// scenario S5: push R, begin_subexpression, push K, end_subexpression.
func TestDereferenceViaBuilder(t *testing.T) {
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

	b := New(tbl)
	if err := b.PushColumn("R"); err != nil {
		t.Fatal(err)
	}
	if err := b.BeginSubexpression(); err != nil {
		t.Fatal(err)
	}
	if err := b.PushColumn("K"); err != nil {
		t.Fatal(err)
	}
	if err := b.EndSubexpression(engineopts.DefaultExpressionOptions()); err != nil {
		t.Fatal(err)
	}
	e, err := b.Release(engineopts.DefaultExpressionOptions())
	if err != nil {
		t.Fatal(err)
	}

	recs := record.NewWithCapacity(3)
	for i := 1; i <= 3; i++ {
		recs.Push(record.Record{RowID: value.Int(i)})
	}
	var out []value.Datum
	if err := e.Evaluate(recs, &out); err != nil {
		t.Fatal(err)
	}
	want := []value.Int{30, 10, 20}
	for i, w := range want {
		if out[i].AsInt() != w {
			t.Errorf("R.K[%d] = %v, want %v", i, out[i].AsInt(), w)
		}
	}
}

func TestClearResetsStack(t *testing.T) {
	tbl := column.NewTable("T")
	b := New(tbl)
	b.PushConstant(value.FromInt(1))
	b.Clear()
	if _, err := b.Release(engineopts.DefaultExpressionOptions()); err == nil {
		t.Fatal("expected Release to fail after Clear emptied the stack")
	}
}
