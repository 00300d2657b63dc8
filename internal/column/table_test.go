package column

import (
	"testing"

	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

func TestInsertRowWithKeyRejectsDuplicate(t *testing.T) {
	tbl := NewTable("Users")
	if _, err := NewIntColumn(tbl, "id", true, nil); err != nil {
		t.Fatalf("NewIntColumn: %v", err)
	}
	if _, err := tbl.InsertRowWithKey(value.FromInt(1)); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := tbl.InsertRowWithKey(value.FromInt(1)); err == nil {
		t.Fatal("expected KeyDuplicate error on second insert with same key")
	}
}

func TestFixedColumnSetAndGet(t *testing.T) {
	tbl := NewTable("Events")
	id1 := tbl.InsertRow()
	id2 := tbl.InsertRow()
	age, err := NewIntColumn(tbl, "age", false, nil)
	if err != nil {
		t.Fatalf("NewIntColumn: %v", err)
	}

	if err := age.Set(id1, value.FromInt(30)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := age.Get(id1).AsInt(); got != 30 {
		t.Fatalf("Get(id1) = %v, want 30", got)
	}
	if got := age.Get(id2).AsInt(); got != 0 {
		t.Fatalf("Get(id2) = %v, want 0 default", got)
	}
}

func TestReferenceColumnRejectsDeadRow(t *testing.T) {
	users := NewTable("Users")
	if _, err := NewIntColumn(users, "id", true, nil); err != nil {
		t.Fatal(err)
	}
	posts := NewTable("Posts")
	author, err := NewIntColumn(posts, "author", false, users)
	if err != nil {
		t.Fatal(err)
	}
	postID := posts.InsertRow()

	if err := author.Set(postID, value.FromInt(999)); err == nil {
		t.Fatal("expected InvalidReference for a row id that was never inserted on Users")
	}
}

func TestRemoveRowCompactsVectorIntReferences(t *testing.T) {
	tags := NewTable("Tags")
	if _, err := NewIntColumn(tags, "id", true, nil); err != nil {
		t.Fatal(err)
	}
	tagA, err := tags.InsertRowWithKey(value.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	tagB, err := tags.InsertRowWithKey(value.FromInt(2))
	if err != nil {
		t.Fatal(err)
	}

	posts := NewTable("Posts")
	tagRefs := NewVectorIntColumn(posts, "tags", tags)
	postID := posts.InsertRow()
	if err := tagRefs.Set(postID, value.FromVectorInt(value.NewVector([]value.Int{tagA, tagB}))); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := tags.RemoveRow(tagA); err != nil {
		t.Fatal(err)
	}
	tags.ClearReferrers([]Column{tagRefs}, tagA)

	got := tagRefs.Get(postID).AsVectorInt().Slice()
	if len(got) != 1 || got[0] != tagB {
		t.Fatalf("tags after removal = %v, want [%v]", got, tagB)
	}
}

func TestTextColumnKeyUniqueness(t *testing.T) {
	tbl := NewTable("Words")
	col, err := NewTextColumn(tbl, "word", true)
	if err != nil {
		t.Fatal(err)
	}
	id1 := tbl.InsertRow()
	if err := col.Set(id1, value.FromText(value.NewText([]byte("hello")))); err != nil {
		t.Fatal(err)
	}
	id2 := tbl.InsertRow()
	if err := col.Set(id2, value.FromText(value.NewText([]byte("hello")))); err == nil {
		t.Fatal("expected KeyDuplicate for a repeated Text key")
	}
	if err := col.Set(id2, value.FromText(value.NewText([]byte("world")))); err != nil {
		t.Fatalf("Set distinct key: %v", err)
	}
	if got := col.FindOne(value.FromText(value.NewText([]byte("hello")))); got != id1 {
		t.Fatalf("FindOne(hello) = %v, want %v", got, id1)
	}
}

func TestVectorTextRoundTrip(t *testing.T) {
	tbl := NewTable("Docs")
	col := NewVectorTextColumn(tbl, "words")
	id := tbl.InsertRow()
	words := []value.Text{value.NewText([]byte("alpha")), value.NewText([]byte("beta")), value.NewText([]byte(""))}
	if err := col.Set(id, value.FromVectorText(value.NewVector(words))); err != nil {
		t.Fatal(err)
	}
	got := col.Get(id).AsVectorText().Slice()
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	for i, w := range words {
		if got[i].String() != w.String() {
			t.Errorf("element %d = %q, want %q", i, got[i].String(), w.String())
		}
	}
}

func TestVectorTextNA(t *testing.T) {
	tbl := NewTable("Docs")
	col := NewVectorTextColumn(tbl, "words")
	id := tbl.InsertRow()
	if got := col.Get(id); !got.IsNA() {
		t.Fatalf("unset Vector<Text> should be N/A, got %v", got)
	}
	if err := col.Set(id, value.FromVectorText(value.NAVector[value.Text]())); err != nil {
		t.Fatal(err)
	}
	if got := col.Get(id); !got.IsNA() {
		t.Fatal("explicit N/A vector should stay N/A")
	}
}

func TestCreateCursorOrderAndOffsetLimit(t *testing.T) {
	tbl := NewTable("Rows")
	for i := 0; i < 5; i++ {
		tbl.InsertRow()
	}
	cur := tbl.CreateCursor(engineopts.CursorOptions{Offset: 1, Limit: 2, OrderType: engineopts.Regular})
	var rs record.Set
	n, err := cur.Read(10, &rs)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || rs.Len() != 2 {
		t.Fatalf("n = %d, rs.Len() = %d, want 2", n, rs.Len())
	}
	if rs.At(0).RowID != 2 || rs.At(1).RowID != 3 {
		t.Fatalf("got rows %v, %v; want 2, 3", rs.At(0).RowID, rs.At(1).RowID)
	}
}

func TestCreateIndexBackfillsExistingValues(t *testing.T) {
	tbl := NewTable("Rows")
	age, err := NewIntColumn(tbl, "age", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]value.Int, 3)
	for i := range ids {
		ids[i] = tbl.InsertRow()
		if err := age.Set(ids[i], value.FromInt(value.Int(40+i))); err != nil {
			t.Fatal(err)
		}
	}
	idx, err := age.CreateIndex("age_idx")
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 3 {
		t.Fatalf("idx.Len() = %d, want 3 (backfilled)", idx.Len())
	}
	if got := age.FindOne(value.FromInt(41)); got != ids[1] {
		t.Fatalf("FindOne(41) = %v, want %v", got, ids[1])
	}
}
