package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"linkdeck/internal/domain"
	"linkdeck/internal/gesture"
	"linkdeck/internal/logger"
)

// ErrNotReordering is returned by reorder operations issued while the
// list is in viewing mode.
var ErrNotReordering = errors.New("list is not in reorder mode")

// Mode is the list screen state.
type Mode int

const (
	// ModeViewing is the initial state: items expose their tap
	// actions and a long-press on an item body enters reordering.
	ModeViewing Mode = iota
	// ModeReordering turns items into drag handles over a private
	// draft copy of the ordering.
	ModeReordering
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeReordering:
		return "reordering"
	default:
		return "unknown"
	}
}

// LinkStore is the slice of the store the list screen consumes.
type LinkStore interface {
	ListLinks(ctx context.Context) ([]domain.LinkItem, error)
	ReorderLinks(ctx context.Context, updates []domain.OrderUpdate) error
}

// Notifier displays an ephemeral message; no result comes back.
type Notifier interface {
	Show(text string)
}

// List is the reorder-capable list screen for one session.
//
// Two states: viewing and reordering. A long-press (held contact past
// the threshold) on an item enters reordering over a private draft copy
// of the list. Drags mutate only the draft; nothing is persisted until
// Save commits the whole draft as one atomic batch. Cancel discards the
// draft and re-fetches the canonical list.
type List struct {
	mu        sync.Mutex
	store     LinkStore
	notifier  Notifier
	log       logger.Logger
	longPress *gesture.LongPress

	mode      Mode
	items     []domain.LinkItem
	draft     []domain.LinkItem
	lastTouch time.Time
}

// NewList creates a list screen in viewing mode with an empty item set;
// call Refresh to load the canonical list.
func NewList(store LinkStore, notifier Notifier, log logger.Logger, holdThreshold time.Duration) *List {
	l := &List{
		store:     store,
		notifier:  notifier,
		log:       log,
		lastTouch: time.Now(),
	}
	l.longPress = gesture.NewLongPress(holdThreshold, l.enterReorder)
	return l
}

// Refresh loads the canonical list from the store. A draft in progress
// is left untouched.
func (l *List) Refresh(ctx context.Context) error {
	items, err := l.store.ListLinks(ctx)
	if err != nil {
		l.log.Error("failed to load links", logger.Error(err))
		l.notifier.Show("failed to load links")
		return err
	}
	domain.SortByOrder(items)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()
	l.items = items
	return nil
}

// Mode reports the current state.
func (l *List) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// Items returns a snapshot of the visible sequence: the draft while
// reordering, the canonical list otherwise.
func (l *List) Items() []domain.LinkItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	src := l.items
	if l.mode == ModeReordering {
		src = l.draft
	}
	out := make([]domain.LinkItem, len(src))
	copy(out, src)
	return out
}

// PointerDown reports a contact on an item body. It arms the long-press
// detector; detection is suppressed entirely while already reordering,
// and an empty list or unknown item disables entry (no-op, not an
// error).
func (l *List) PointerDown(itemID string) {
	l.mu.Lock()
	l.touch()
	if l.mode == ModeReordering || len(l.items) == 0 || domain.IndexOf(l.items, itemID) < 0 {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	l.longPress.Press()
}

// PointerUp reports the contact ending. Before the threshold this
// cancels the pending long-press with no state change.
func (l *List) PointerUp() {
	l.longPress.Release()
}

// enterReorder transitions viewing -> reordering over a private draft
// copy. Fired by the long-press detector.
func (l *List) enterReorder() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mode == ModeReordering || len(l.items) == 0 {
		return
	}
	l.draft = make([]domain.LinkItem, len(l.items))
	copy(l.draft, l.items)
	l.mode = ModeReordering
	l.log.Debug("entered reorder mode", logger.Int("items", len(l.draft)))
}

// Drag relocates activeID to the position of overID in the draft, then
// densely renumbers it. Only the in-memory draft changes; no store call
// occurs per drag. A missing or identical target is a no-op.
func (l *List) Drag(activeID, overID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()

	if l.mode != ModeReordering {
		return ErrNotReordering
	}
	if activeID == overID {
		return nil
	}
	from := domain.IndexOf(l.draft, activeID)
	to := domain.IndexOf(l.draft, overID)
	if from < 0 || to < 0 {
		return nil
	}

	l.draft = domain.MoveItem(l.draft, from, to)
	domain.Renumber(l.draft)
	return nil
}

// Drop resolves the drag target from the release pointer position and
// the reported item bounds (closest bounding-region center wins), then
// applies the move. No target under the pointer retains the original
// order.
func (l *List) Drop(activeID string, pointer domain.Point, rects []domain.ItemRect) error {
	overID, ok := domain.ResolveDropTarget(pointer, rects)
	if !ok {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.mode != ModeReordering {
			return ErrNotReordering
		}
		return nil
	}
	return l.Drag(activeID, overID)
}

// Save commits the draft ordering through the store's atomic reorder
// batch, then transitions back to viewing. On failure the screen stays
// in reordering with no partial state change.
func (l *List) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()

	if l.mode != ModeReordering {
		return ErrNotReordering
	}

	updates := make([]domain.OrderUpdate, len(l.draft))
	for i, item := range l.draft {
		updates[i] = domain.OrderUpdate{ID: item.ID, Order: item.Order}
	}

	if err := l.store.ReorderLinks(ctx, updates); err != nil {
		l.log.Error("failed to save order", logger.Error(err))
		l.notifier.Show("failed to save order")
		return err
	}

	l.items = l.draft
	l.draft = nil
	l.mode = ModeViewing
	l.notifier.Show("order saved")
	return nil
}

// Cancel discards the draft, re-fetches the canonical list and returns
// to viewing. Cancelling twice has the same effect as once.
func (l *List) Cancel(ctx context.Context) error {
	l.mu.Lock()
	l.touch()
	l.draft = nil
	l.mode = ModeViewing
	l.mu.Unlock()

	return l.Refresh(ctx)
}

// OpenURL returns the item's url verbatim for the open-in-new-context
// action; nothing is rewritten or validated.
func (l *List) OpenURL(itemID string) (string, error) {
	return l.lookupURL(itemID)
}

// CopyURL returns the item's url verbatim for the clipboard action and
// surfaces the copy confirmation.
func (l *List) CopyURL(itemID string) (string, error) {
	url, err := l.lookupURL(itemID)
	if err != nil {
		return "", err
	}
	l.notifier.Show("url copied")
	return url, nil
}

func (l *List) lookupURL(itemID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()

	src := l.items
	if l.mode == ModeReordering {
		src = l.draft
	}
	if i := domain.IndexOf(src, itemID); i >= 0 {
		return src[i].URL, nil
	}
	return "", domain.ErrNotFound
}

// LastTouch reports the last interaction time, used by the idle
// sweeper.
func (l *List) LastTouch() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastTouch
}

// touch must be called with l.mu held.
func (l *List) touch() {
	l.lastTouch = time.Now()
}
