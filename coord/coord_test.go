package coord

import "testing"

func TestRangeWidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		r     Range
		empty bool
		width int
	}{
		{"empty equal bounds", Range{Begin: 3, End: 3}, true, 0},
		{"empty inverted bounds", Range{Begin: 5, End: 2}, true, 0},
		{"positive width", Range{Begin: 2, End: 7}, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.empty {
				t.Fatalf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.r.Width(); got != tt.width {
				t.Fatalf("Width() = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestRangeTranslate(t *testing.T) {
	t.Parallel()
	r := Range{Begin: 2, End: 5}
	got := r.Translate(3)
	want := Range{Begin: 5, End: 8}
	if got != want {
		t.Fatalf("Translate(3) = %+v, want %+v", got, want)
	}
}

func TestBaseFullAndSize(t *testing.T) {
	t.Parallel()
	b := Full(Coordinate{4, 8})
	if b.Empty() {
		t.Fatal("Full base reported empty")
	}
	if got, want := b.Size(), 32; got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
	if got, want := b.MaxWidth(), 8; got != want {
		t.Fatalf("MaxWidth() = %d, want %d", got, want)
	}
}

func TestBaseEmptySize(t *testing.T) {
	t.Parallel()
	b := Base{Ranges: []Range{{Begin: 0, End: 4}, {Begin: 3, End: 3}}}
	if !b.Empty() {
		t.Fatal("expected base with a degenerate axis to be empty")
	}
	if got := b.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestBaseTranslate(t *testing.T) {
	t.Parallel()
	b := Full(Coordinate{6, 6})
	moved := b.Translate(Coordinate{1, -1})
	want := Base{Ranges: []Range{{Begin: 1, End: 7}, {Begin: -1, End: 5}}}
	for i := range want.Ranges {
		if moved.Ranges[i] != want.Ranges[i] {
			t.Fatalf("Translate axis %d = %+v, want %+v", i, moved.Ranges[i], want.Ranges[i])
		}
	}
}

func TestBaseWithRange(t *testing.T) {
	t.Parallel()
	b := Full(Coordinate{4, 4})
	out := b.WithRange(1, Range{Begin: 1, End: 2})
	if b.Ranges[1] != (Range{Begin: 0, End: 4}) {
		t.Fatal("WithRange mutated the receiver")
	}
	if out.Ranges[1] != (Range{Begin: 1, End: 2}) {
		t.Fatalf("WithRange axis 1 = %+v, want {1 2}", out.Ranges[1])
	}
}

func TestCoordinateAdd(t *testing.T) {
	t.Parallel()
	a := Coordinate{1, 2, 3}
	b := Coordinate{10, 20, 30}
	got := a.Add(b)
	want := Coordinate{11, 22, 33}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Add()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
