package game

import "testing"

func TestScore_AllMatch(t *testing.T) {
	b, c := Score(Code{1, 2, 3, 4}, Code{1, 2, 3, 4})
	if b != 4 || c != 0 {
		t.Fatalf("expected 4 bulls,0 cows got %d bulls,%d cows", b, c)
	}
}

func TestScore_AllDisplaced(t *testing.T) {
	b, c := Score(Code{1, 2, 3, 4}, Code{4, 3, 2, 1})
	if b != 0 || c != 4 {
		t.Fatalf("expected 0,4 got %d,%d", b, c)
	}
}

func TestScore_NoMatch(t *testing.T) {
	b, c := Score(Code{1, 2, 3, 4}, Code{5, 6, 7, 8})
	if b != 0 || c != 0 {
		t.Fatalf("expected 0,0 got %d,%d", b, c)
	}
}

func TestScore_WithRepeats(t *testing.T) {
	// secret 1122, guess 1212 -> 2 быка, 2 коровы
	b, c := Score(Code{1, 1, 2, 2}, Code{1, 2, 1, 2})
	if b != 2 || c != 2 {
		t.Fatalf("expected 2,2 got %d,%d", b, c)
	}
}

func TestScore_RepeatCappedByRarerCount(t *testing.T) {
	// guess повторяет единицу дважды, в секрете она одна:
	// overlap = min(1,2)+min(1,1) = 2, один из них бык
	b, c := Score(Code{1, 2, 3, 4}, Code{1, 1, 2, 5})
	if b != 1 || c != 1 {
		t.Fatalf("expected 1,1 got %d,%d", b, c)
	}
}

func TestScore_SymmetricAndBounded(t *testing.T) {
	pairs := [][2]Code{
		{{1, 2, 3, 4}, {1, 1, 2, 5}},
		{{1, 1, 2, 2}, {1, 2, 1, 2}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}},
		{{9, 9, 9, 9}, {0, 0, 0, 9}},
		{{1, 2, 3, 4}, {4, 3, 2, 1}},
		{{5, 0, 5, 0}, {0, 5, 0, 5}},
	}
	for _, p := range pairs {
		b1, c1 := Score(p[0], p[1])
		b2, c2 := Score(p[1], p[0])
		if b1 != b2 || c1 != c2 {
			t.Fatalf("Score(%v,%v)=(%d,%d) but Score(%v,%v)=(%d,%d)",
				p[0], p[1], b1, c1, p[1], p[0], b2, c2)
		}
		if b1 < 0 || b1 > 4 || c1 < 0 || c1 > 4 || b1+c1 > 4 {
			t.Fatalf("Score(%v,%v)=(%d,%d) out of bounds", p[0], p[1], b1, c1)
		}
		if (b1 == 4) != (p[0] == p[1]) {
			t.Fatalf("Score(%v,%v): 4 bulls must mean identical codes", p[0], p[1])
		}
	}
}

func TestValid4Digits(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"0000", true},
		{"0123", true},
		{"9999", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"-123", false},
		{"+123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := valid4Digits(tc.s); got != tc.ok {
			t.Fatalf("valid4Digits(%q)=%v want %v", tc.s, got, tc.ok)
		}
	}
}
