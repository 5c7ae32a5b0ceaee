package screen

import (
	"testing"
	"time"

	"linkdeck/internal/logger"
)

func newTestRegistry() *Registry {
	log := logger.New("error", false)
	return NewRegistry(func() *List {
		return NewList(&fakeStore{}, &fakeNotifier{}, log, testHold)
	})
}

func TestGetOrCreateReusesScreen(t *testing.T) {
	r := newTestRegistry()

	a := r.GetOrCreate("token-a")
	b := r.GetOrCreate("token-a")
	if a != b {
		t.Error("same token should map to the same screen")
	}

	c := r.GetOrCreate("token-b")
	if c == a {
		t.Error("distinct tokens should map to distinct screens")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestGetWithoutCreate(t *testing.T) {
	r := newTestRegistry()

	if _, ok := r.Get("missing"); ok {
		t.Error("Get() on an unknown token should miss")
	}

	created := r.GetOrCreate("token-a")
	got, ok := r.Get("token-a")
	if !ok || got != created {
		t.Error("Get() should return the created screen")
	}
}

func TestDelete(t *testing.T) {
	r := newTestRegistry()

	r.GetOrCreate("token-a")
	r.Delete("token-a")

	if _, ok := r.Get("token-a"); ok {
		t.Error("deleted screen still present")
	}
	// Deleting again is harmless.
	r.Delete("token-a")
}

func TestSweepEvictsIdleScreens(t *testing.T) {
	r := newTestRegistry()

	idle := r.GetOrCreate("idle")
	r.GetOrCreate("active")

	// Backdate the idle screen past the cutoff.
	idle.mu.Lock()
	idle.lastTouch = time.Now().Add(-time.Hour)
	idle.mu.Unlock()

	evicted := r.Sweep(30 * time.Minute)
	if evicted != 1 {
		t.Errorf("Sweep() = %d, want 1", evicted)
	}
	if _, ok := r.Get("idle"); ok {
		t.Error("idle screen survived the sweep")
	}
	if _, ok := r.Get("active"); !ok {
		t.Error("active screen was evicted")
	}
}
