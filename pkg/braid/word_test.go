package braid

import "testing"

func TestWordInverse(t *testing.T) {
	w := Word{1, -2, 3}
	inv := w.Inverse()
	if !inv.Equal(Word{-3, 2, -1}) {
		t.Errorf("Inverse = %v", inv)
	}
	if !Compose(w, inv).IsIdentity() {
		t.Error("w * w^-1 should reduce to the identity")
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		in   []Word
		want Word
	}{
		{"concat", []Word{{1}, {2}}, Word{1, 2}},
		{"cancel at seam", []Word{{1, 2}, {-2, 3}}, Word{1, 3}},
		{"cascade", []Word{{1, 2, 3}, {-3, -2, -1}}, nil},
		{"empty operands", []Word{nil, {1}, nil}, Word{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.in...); !got.Equal(tt.want) {
				t.Errorf("Compose = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreeReduce(t *testing.T) {
	w := Word{1, 2, -2, -1, 3}
	if got := w.FreeReduce(); !got.Equal(Word{3}) {
		t.Errorf("FreeReduce = %v, want [3]", got)
	}
}

func TestCyclicReduce(t *testing.T) {
	// conjugate s1 * (s2) * s1^-1 cyclically reduces to s2
	w := Word{1, 2, -1}
	if got := w.CyclicReduce(); !got.Equal(Word{2}) {
		t.Errorf("CyclicReduce = %v, want [2]", got)
	}
	// already cyclically reduced words are unchanged
	w = Word{1, 2}
	if got := w.CyclicReduce(); !got.Equal(w) {
		t.Errorf("CyclicReduce = %v, want %v", got, w)
	}
}

func TestReindex(t *testing.T) {
	w := Word{1, -2}
	got := w.Reindex(func(g int) int { return g + 10 })
	if !got.Equal(Word{11, -12}) {
		t.Errorf("Reindex = %v", got)
	}
}

func TestMaxGenerator(t *testing.T) {
	if got := (Word{1, -5, 3}).MaxGenerator(); got != 5 {
		t.Errorf("MaxGenerator = %d, want 5", got)
	}
	if got := (Word{}).MaxGenerator(); got != 0 {
		t.Errorf("MaxGenerator of identity = %d, want 0", got)
	}
}

func TestWordString(t *testing.T) {
	tests := []struct {
		w    Word
		want string
	}{
		{nil, "1"},
		{Word{1}, "s1"},
		{Word{1, -2}, "s1*s2^-1"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.w, got, tt.want)
		}
	}
}
