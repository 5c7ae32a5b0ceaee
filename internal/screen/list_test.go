package screen

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"linkdeck/internal/domain"
	"linkdeck/internal/logger"
)

const testHold = 20 * time.Millisecond

type fakeStore struct {
	mu         sync.Mutex
	items      []domain.LinkItem
	listErr    error
	reorderErr error
	reordered  []domain.OrderUpdate
}

func (f *fakeStore) ListLinks(ctx context.Context) ([]domain.LinkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.LinkItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeStore) ReorderLinks(ctx context.Context, updates []domain.OrderUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reorderErr != nil {
		return f.reorderErr
	}
	f.reordered = append([]domain.OrderUpdate(nil), updates...)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Show(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, text)
}

func (f *fakeNotifier) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

func threeLinks() []domain.LinkItem {
	return []domain.LinkItem{
		{ID: "a", Title: "A", URL: "https://a.example", Order: 0},
		{ID: "b", Title: "B", URL: "https://b.example", Order: 1},
		{ID: "c", Title: "C", URL: "https://c.example", Order: 2},
	}
}

func newTestList(t *testing.T, store *fakeStore) (*List, *fakeNotifier) {
	t.Helper()

	notifier := &fakeNotifier{}
	l := NewList(store, notifier, logger.New("error", false), testHold)
	if err := l.Refresh(context.Background()); err != nil && store.listErr == nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	return l, notifier
}

func waitForMode(t *testing.T, l *List, want Mode) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for l.Mode() != want {
		if time.Now().After(deadline) {
			t.Fatalf("mode = %v, want %v", l.Mode(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func enterReordering(t *testing.T, l *List, itemID string) {
	t.Helper()

	l.PointerDown(itemID)
	waitForMode(t, l, ModeReordering)
}

func itemIDs(items []domain.LinkItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func assertSequence(t *testing.T, items []domain.LinkItem, want ...string) {
	t.Helper()

	got := itemIDs(items)
	if len(got) != len(want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", got, want)
		}
		if items[i].Order != int64(i) {
			t.Errorf("items[%d].Order = %d, want %d", i, items[i].Order, i)
		}
	}
}

func TestLongPressEntersReordering(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	l.PointerDown("a")
	waitForMode(t, l, ModeReordering)
}

func TestShortPressStaysViewing(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	l.PointerDown("a")
	time.Sleep(testHold / 4)
	l.PointerUp()

	time.Sleep(2 * testHold)
	if l.Mode() != ModeViewing {
		t.Errorf("mode = %v, want viewing after a short press", l.Mode())
	}
}

func TestLongPressOnEmptyListIsNoop(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{})

	l.PointerDown("ghost")
	time.Sleep(2 * testHold)

	if l.Mode() != ModeViewing {
		t.Errorf("mode = %v, want viewing on empty list", l.Mode())
	}
}

func TestLongPressOnUnknownItemIsNoop(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	l.PointerDown("not-a-link")
	time.Sleep(2 * testHold)

	if l.Mode() != ModeViewing {
		t.Errorf("mode = %v, want viewing for an unknown item", l.Mode())
	}
}

func TestLongPressSuppressedWhileReordering(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})
	enterReordering(t, l, "a")

	if err := l.Drag("a", "b"); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}

	// A second hold must not reset the draft.
	l.PointerDown("c")
	time.Sleep(2 * testHold)

	assertSequence(t, l.Items(), "b", "a", "c")
}

func TestDragMovesWithinDraftOnly(t *testing.T) {
	store := &fakeStore{items: threeLinks()}
	l, _ := newTestList(t, store)
	enterReordering(t, l, "a")

	// Drag a onto c: a takes position 2, b and c shift up.
	if err := l.Drag("a", "c"); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}

	assertSequence(t, l.Items(), "b", "c", "a")

	if store.reordered != nil {
		t.Error("drag must not touch the store")
	}
}

func TestDragRequiresReordering(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	if err := l.Drag("a", "b"); !errors.Is(err, ErrNotReordering) {
		t.Errorf("Drag() in viewing mode = %v, want ErrNotReordering", err)
	}
}

func TestDragSameOrMissingTargetIsNoop(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})
	enterReordering(t, l, "a")

	if err := l.Drag("a", "a"); err != nil {
		t.Fatalf("Drag(a, a) = %v, want nil", err)
	}
	if err := l.Drag("a", "ghost"); err != nil {
		t.Fatalf("Drag(a, ghost) = %v, want nil", err)
	}

	assertSequence(t, l.Items(), "a", "b", "c")
}

func TestDropResolvesClosestCenter(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})
	enterReordering(t, l, "a")

	rects := []domain.ItemRect{
		{ID: "a", X: 0, Y: 0, Width: 100, Height: 40},
		{ID: "b", X: 0, Y: 40, Width: 100, Height: 40},
		{ID: "c", X: 0, Y: 80, Width: 100, Height: 40},
	}

	// Released near c's center: a lands at the end.
	if err := l.Drop("a", domain.Point{X: 50, Y: 100}, rects); err != nil {
		t.Fatalf("Drop() failed: %v", err)
	}

	assertSequence(t, l.Items(), "b", "c", "a")
}

func TestDropWithNoTargetKeepsOrder(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})
	enterReordering(t, l, "a")

	if err := l.Drop("a", domain.Point{X: 50, Y: 100}, nil); err != nil {
		t.Fatalf("Drop() with no rects = %v, want nil", err)
	}

	assertSequence(t, l.Items(), "a", "b", "c")
}

func TestSaveCommitsDraftAtomically(t *testing.T) {
	store := &fakeStore{items: threeLinks()}
	l, notifier := newTestList(t, store)
	enterReordering(t, l, "a")

	if err := l.Drag("a", "c"); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := l.Save(context.Background()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if l.Mode() != ModeViewing {
		t.Errorf("mode after save = %v, want viewing", l.Mode())
	}
	want := []domain.OrderUpdate{{ID: "b", Order: 0}, {ID: "c", Order: 1}, {ID: "a", Order: 2}}
	if len(store.reordered) != len(want) {
		t.Fatalf("reordered = %v, want %v", store.reordered, want)
	}
	for i := range want {
		if store.reordered[i] != want[i] {
			t.Errorf("reordered[%d] = %v, want %v", i, store.reordered[i], want[i])
		}
	}
	if notifier.last() != "order saved" {
		t.Errorf("last notice = %q, want %q", notifier.last(), "order saved")
	}
}

func TestSaveFailureStaysReordering(t *testing.T) {
	store := &fakeStore{items: threeLinks(), reorderErr: errors.New("backend down")}
	l, notifier := newTestList(t, store)
	enterReordering(t, l, "a")

	if err := l.Drag("a", "c"); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := l.Save(context.Background()); err == nil {
		t.Fatal("Save() should surface the store error")
	}

	if l.Mode() != ModeReordering {
		t.Errorf("mode after failed save = %v, want reordering", l.Mode())
	}
	assertSequence(t, l.Items(), "b", "c", "a")
	if notifier.last() != "failed to save order" {
		t.Errorf("last notice = %q, want %q", notifier.last(), "failed to save order")
	}
}

func TestSaveRequiresReordering(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	if err := l.Save(context.Background()); !errors.Is(err, ErrNotReordering) {
		t.Errorf("Save() in viewing mode = %v, want ErrNotReordering", err)
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	store := &fakeStore{items: threeLinks()}
	l, _ := newTestList(t, store)
	enterReordering(t, l, "a")

	if err := l.Drag("a", "c"); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := l.Cancel(context.Background()); err != nil {
		t.Fatalf("Cancel() failed: %v", err)
	}

	if l.Mode() != ModeViewing {
		t.Errorf("mode after cancel = %v, want viewing", l.Mode())
	}
	assertSequence(t, l.Items(), "a", "b", "c")
	if store.reordered != nil {
		t.Error("cancel must not persist anything")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})
	enterReordering(t, l, "a")

	if err := l.Cancel(context.Background()); err != nil {
		t.Fatalf("first Cancel() failed: %v", err)
	}
	if err := l.Cancel(context.Background()); err != nil {
		t.Fatalf("second Cancel() failed: %v", err)
	}
	if l.Mode() != ModeViewing {
		t.Errorf("mode = %v, want viewing", l.Mode())
	}
}

func TestRefreshFailureNotifies(t *testing.T) {
	store := &fakeStore{listErr: errors.New("backend down")}
	notifier := &fakeNotifier{}
	l := NewList(store, notifier, logger.New("error", false), testHold)

	if err := l.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() should surface the store error")
	}
	if notifier.last() != "failed to load links" {
		t.Errorf("last notice = %q, want %q", notifier.last(), "failed to load links")
	}
}

func TestOpenURLReturnsVerbatim(t *testing.T) {
	items := threeLinks()
	items[0].URL = "ftp://weirdé/path?q= raw"
	l, _ := newTestList(t, &fakeStore{items: items})

	url, err := l.OpenURL("a")
	if err != nil {
		t.Fatalf("OpenURL() failed: %v", err)
	}
	if url != items[0].URL {
		t.Errorf("OpenURL() = %q, want the stored value untouched", url)
	}
}

func TestCopyURLNotifies(t *testing.T) {
	l, notifier := newTestList(t, &fakeStore{items: threeLinks()})

	url, err := l.CopyURL("b")
	if err != nil {
		t.Fatalf("CopyURL() failed: %v", err)
	}
	if url != "https://b.example" {
		t.Errorf("CopyURL() = %q, want %q", url, "https://b.example")
	}
	if notifier.last() != "url copied" {
		t.Errorf("last notice = %q, want %q", notifier.last(), "url copied")
	}
}

func TestLookupUnknownItem(t *testing.T) {
	l, _ := newTestList(t, &fakeStore{items: threeLinks()})

	if _, err := l.OpenURL("ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("OpenURL(ghost) = %v, want ErrNotFound", err)
	}
}
