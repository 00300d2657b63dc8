package value

import "testing"

func TestIntOverflowIsNA(t *testing.T) {
	tests := []struct {
		name string
		a, b Int
		op   func(a, b Int) Int
		want Int
	}{
		{"add overflow", MaxValidInt, 1, Int.Add, IntNA},
		{"add in range", 5, 7, Int.Add, 12},
		{"sub overflow", MinValidInt, 1, Int.Sub, IntNA},
		{"mul overflow", MaxValidInt, 2, Int.Mul, IntNA},
		{"div by zero", 10, 0, Int.Div, IntNA},
		{"mod by zero", 10, 0, Int.Mod, IntNA},
		{"div min by neg one", MinValidInt, -1, Int.Div, IntNA},
		{"div normal", 100, 3, Int.Div, 33},
		{"mod normal", 100, 3, Int.Mod, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntNAPropagation(t *testing.T) {
	if got := IntNA.Add(5); got != IntNA {
		t.Errorf("IntNA.Add(5) = %v, want IntNA", got)
	}
	if got := IntNA.Negate(); got != IntNA {
		t.Errorf("-NA should be NA, got %v", got)
	}
	if got := (Int(1)).Shl(64); got != IntNA {
		t.Errorf("shift by 64 should be NA, got %v", got)
	}
	if got := (Int(1)).Shl(IntNA); got != IntNA {
		t.Errorf("shift by NA should be NA, got %v", got)
	}
}

func TestIntComparisonNA(t *testing.T) {
	if got := IntNA.Less(5); got != NA {
		t.Errorf("IntNA.Less(5) = %v, want NA", got)
	}
	if got := Int(5).Equal(5); got != True {
		t.Errorf("5.Equal(5) = %v, want True", got)
	}
}

func TestIntOverflowS3(t *testing.T) {
	// S3 from spec.md: Int column holding math.MaxInt64; X + 1 is N/A.
	x := MaxValidInt
	if got := x.Add(1); got != IntNA {
		t.Errorf("MaxValidInt + 1 = %v, want IntNA", got)
	}
}
