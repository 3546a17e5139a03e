package level

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"A1", A1},
		{"a2", A2},
		{"B1", B1},
		{" b2 ", B2},
		{"C1", C1},
		{"c2", C2},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"", "D1", "beginner", "A3"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Parse(%q) err = %v, want ErrUnknownLevel", in, err)
		}
	}
}

func TestOrdering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("levels not ascending at %d: %s >= %s", i, levels[i-1], levels[i])
		}
	}
}

func TestNextPrevSaturate(t *testing.T) {
	if got := C2.Next(); got != C2 {
		t.Errorf("C2.Next() = %s, want C2", got)
	}
	if got := A1.Prev(); got != A1 {
		t.Errorf("A1.Prev() = %s, want A1", got)
	}
	if got := B1.Next(); got != B2 {
		t.Errorf("B1.Next() = %s, want B2", got)
	}
	if got := B1.Prev(); got != A2 {
		t.Errorf("B1.Prev() = %s, want A2", got)
	}
}

func TestExpectedResponseTimeMonotone(t *testing.T) {
	prev := 0
	for i, l := range AllLevels() {
		ms := l.ExpectedResponseTimeMs()
		if i > 0 && ms >= prev {
			t.Errorf("%s expected time %dms not below previous %dms", l, ms, prev)
		}
		prev = ms
	}
	if A1.ExpectedResponseTimeMs() != 8000 {
		t.Errorf("A1 expected time = %d, want 8000", A1.ExpectedResponseTimeMs())
	}
	if C2.ExpectedResponseTimeMs() != 3000 {
		t.Errorf("C2 expected time = %d, want 3000", C2.ExpectedResponseTimeMs())
	}
}
