package domain

import "testing"

func ids(items []LinkItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func links(idsAndOrders ...string) []LinkItem {
	items := make([]LinkItem, len(idsAndOrders))
	for i, id := range idsAndOrders {
		items[i] = LinkItem{ID: id, Order: int64(i)}
	}
	return items
}

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{
			name: "first to last",
			from: 0,
			to:   2,
			want: []string{"b", "c", "a"},
		},
		{
			name: "last to first",
			from: 2,
			to:   0,
			want: []string{"c", "a", "b"},
		},
		{
			name: "adjacent swap",
			from: 0,
			to:   1,
			want: []string{"b", "a", "c"},
		},
		{
			name: "same position is a no-op",
			from: 1,
			to:   1,
			want: []string{"a", "b", "c"},
		},
		{
			name: "out of range is a no-op",
			from: 5,
			to:   0,
			want: []string{"a", "b", "c"},
		},
		{
			name: "negative target is a no-op",
			from: 0,
			to:   -1,
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := MoveItem(links("a", "b", "c"), tt.from, tt.to)
			got := ids(items)
			if len(got) != len(tt.want) {
				t.Fatalf("MoveItem() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MoveItem()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRenumberIsDense(t *testing.T) {
	items := []LinkItem{
		{ID: "a", Order: 7},
		{ID: "b", Order: 3},
		{ID: "c", Order: 42},
	}

	Renumber(items)

	for i, item := range items {
		if item.Order != int64(i) {
			t.Errorf("items[%d].Order = %d, want %d", i, item.Order, i)
		}
	}
}

func TestIndexOf(t *testing.T) {
	items := links("a", "b", "c")

	if got := IndexOf(items, "b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := IndexOf(items, "missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
	if got := IndexOf(nil, "a"); got != -1 {
		t.Errorf("IndexOf on empty = %d, want -1", got)
	}
}

func TestResolveDropTarget(t *testing.T) {
	rects := []ItemRect{
		{ID: "a", X: 0, Y: 0, Width: 100, Height: 40},   // center (50, 20)
		{ID: "b", X: 0, Y: 40, Width: 100, Height: 40},  // center (50, 60)
		{ID: "c", X: 0, Y: 80, Width: 100, Height: 40},  // center (50, 100)
	}

	tests := []struct {
		name    string
		pointer Point
		want    string
	}{
		{
			name:    "directly over first item",
			pointer: Point{X: 50, Y: 20},
			want:    "a",
		},
		{
			name:    "closest center wins near a boundary",
			pointer: Point{X: 50, Y: 45},
			want:    "b",
		},
		{
			name:    "below the list resolves to the last item",
			pointer: Point{X: 50, Y: 300},
			want:    "c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDropTarget(tt.pointer, rects)
			if !ok {
				t.Fatal("ResolveDropTarget() reported no target")
			}
			if got != tt.want {
				t.Errorf("ResolveDropTarget() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveDropTargetNoCandidates(t *testing.T) {
	if _, ok := ResolveDropTarget(Point{X: 1, Y: 1}, nil); ok {
		t.Error("ResolveDropTarget() with no rects should report no target")
	}
}
