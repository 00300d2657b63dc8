package value

import "testing"

func TestTextLexicographicCompare(t *testing.T) {
	a := NewText([]byte("25"))
	b := NewText([]byte("75"))
	if got := a.Less(b); got != True {
		t.Errorf(`"25" < "75" = %v, want True`, got)
	}
}

func TestTextShorterIsLessOnTiePrefix(t *testing.T) {
	a := NewText([]byte("ab"))
	b := NewText([]byte("abc"))
	if got := a.Less(b); got != True {
		t.Errorf(`"ab" < "abc" = %v, want True`, got)
	}
}

func TestTextNAPropagation(t *testing.T) {
	a := NewText([]byte("x"))
	if got := a.Equal(TextNA); got != NA {
		t.Errorf("comparison with NA text should be NA, got %v", got)
	}
	if got := a.StartsWith(TextNA); got != NA {
		t.Errorf("StartsWith with NA should be NA, got %v", got)
	}
}

func TestTextPredicates(t *testing.T) {
	s := NewText([]byte("hello world"))
	if got := s.StartsWith(NewText([]byte("hello"))); got != True {
		t.Errorf("StartsWith failed: %v", got)
	}
	if got := s.EndsWith(NewText([]byte("world"))); got != True {
		t.Errorf("EndsWith failed: %v", got)
	}
	if got := s.Contains(NewText([]byte("lo wo"))); got != True {
		t.Errorf("Contains failed: %v", got)
	}
	if got := s.Contains(NewText([]byte("xyz"))); got != False {
		t.Errorf("Contains should be False: %v", got)
	}
}

func TestTextMatchTreatsNAAsEqual(t *testing.T) {
	if !TextNA.Match(TextNA) {
		t.Errorf("NA.Match(NA) should be true")
	}
	if NewText([]byte("")).Match(TextNA) {
		t.Errorf("empty text should not match NA text")
	}
}
