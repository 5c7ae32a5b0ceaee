package domain

import "math"

// MoveItem relocates the element at index from to index to by removing
// it and reinserting it at the target position. Out-of-range indexes
// leave the slice untouched. The input slice is modified in place.
func MoveItem(items []LinkItem, from, to int) []LinkItem {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	moved := items[from]
	items = append(items[:from], items[from+1:]...)

	// Reinsert at the target position.
	items = append(items, LinkItem{})
	copy(items[to+1:], items[to:])
	items[to] = moved
	return items
}

// Renumber reassigns every item's order to its zero-based position in
// the sequence, regardless of original values.
func Renumber(items []LinkItem) {
	for i := range items {
		items[i].Order = int64(i)
	}
}

// IndexOf returns the position of the link with the given id, or -1.
func IndexOf(items []LinkItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// Point is a pointer position in the client's coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ItemRect is the visual bounding region of one rendered list item,
// reported by the client at drag release time.
type ItemRect struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center of the bounding region.
func (r ItemRect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ResolveDropTarget picks the drop target for a drag released at p: the
// item whose bounding-region center is closest to the pointer. Returns
// false when no candidate rects were reported, in which case the drag
// is a no-op for the caller.
func ResolveDropTarget(p Point, rects []ItemRect) (string, bool) {
	if len(rects) == 0 {
		return "", false
	}
	bestID := ""
	bestDist := math.Inf(1)
	for _, r := range rects {
		c := r.Center()
		dx := c.X - p.X
		dy := c.Y - p.Y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			bestID = r.ID
		}
	}
	return bestID, true
}
