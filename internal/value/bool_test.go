package value

import "testing"

func TestBoolThreeValuedLogic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Bool) Bool
		a, b Bool
		want Bool
	}{
		{"and T T", Bool.And, True, True, True},
		{"and T F", Bool.And, True, False, False},
		{"and T N", Bool.And, True, NA, NA},
		{"and F F", Bool.And, False, False, False},
		{"and F N", Bool.And, False, NA, False},
		{"and N N", Bool.And, NA, NA, NA},
		{"or T T", Bool.Or, True, True, True},
		{"or T F", Bool.Or, True, False, True},
		{"or T N", Bool.Or, True, NA, True},
		{"or F F", Bool.Or, False, False, False},
		{"or F N", Bool.Or, False, NA, NA},
		{"or N N", Bool.Or, NA, NA, NA},
		{"xor T T", Bool.Xor, True, True, False},
		{"xor T F", Bool.Xor, True, False, True},
		{"xor T N", Bool.Xor, True, NA, NA},
		{"xor F F", Bool.Xor, False, False, False},
		{"xor F N", Bool.Xor, False, NA, NA},
		{"xor N N", Bool.Xor, NA, NA, NA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoolNot(t *testing.T) {
	tests := []struct {
		in, want Bool
	}{
		{True, False},
		{False, True},
		{NA, NA},
	}
	for _, tt := range tests {
		if got := tt.in.Not(); got != tt.want {
			t.Errorf("Not(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBoolEqualPropagatesNA(t *testing.T) {
	if got := True.Equal(NA); got != NA {
		t.Errorf("True.Equal(NA) = %v, want NA", got)
	}
	if got := NA.Equal(NA); got != NA {
		t.Errorf("NA.Equal(NA) = %v, want NA (Equal is not Match)", got)
	}
	if !NA.Match(NA) {
		t.Errorf("NA.Match(NA) should be true")
	}
}
