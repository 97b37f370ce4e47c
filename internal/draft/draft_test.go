package draft

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreSetGetRemove(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "25itinse", `{"courseName":"인터넷보안"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	payload, err := store.Get(ctx, "25itinse")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if payload != `{"courseName":"인터넷보안"}` {
		t.Fatalf("payload = %q", payload)
	}

	if err := store.Remove(ctx, "25itinse"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Get(ctx, "25itinse"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Remove(ctx, "25itinse"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double remove, got %v", err)
	}
}

func TestStoreSetOverwritesAndSnapshots(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "25itinse", `{"v":1}`); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "25itinse", `{"v":2}`); err != nil {
		t.Fatal(err)
	}

	payload, err := store.Get(ctx, "25itinse")
	if err != nil {
		t.Fatal(err)
	}
	if payload != `{"v":2}` {
		t.Fatalf("payload = %q", payload)
	}

	snapshots, err := store.Snapshots(ctx, "25itinse")
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snapshots))
	}
	for _, snap := range snapshots {
		if snap.ID == "" {
			t.Fatalf("snapshot without id: %+v", snap)
		}
	}
}

func TestStoreList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"b-course", "a-course"} {
		if err := store.Set(ctx, key, `{}`); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "a-course" || entries[1].Key != "b-course" {
		t.Fatalf("entries: %+v", entries)
	}
	if entries[0].Size != 2 || entries[0].UpdatedAt.IsZero() {
		t.Fatalf("entry metadata: %+v", entries[0])
	}
}

func TestOpenRejectsSecondProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer first.Close()

	if _, err := Open(path); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	var mu sync.Mutex
	flushed := make(map[string][]string)
	debouncer := NewDebouncer(20*time.Millisecond, func(key, payload string) {
		mu.Lock()
		flushed[key] = append(flushed[key], payload)
		mu.Unlock()
	})

	debouncer.Trigger("25itinse", `{"v":1}`)
	debouncer.Trigger("25itinse", `{"v":2}`)
	debouncer.Trigger("25itinse", `{"v":3}`)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		done := len(flushed["25itinse"]) > 0
		mu.Unlock()
		if done || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if got := flushed["25itinse"]; len(got) != 1 || got[0] != `{"v":3}` {
		t.Fatalf("flushed = %v", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var mu sync.Mutex
	var got []string
	debouncer := NewDebouncer(time.Hour, func(key, payload string) {
		mu.Lock()
		got = append(got, key+"="+payload)
		mu.Unlock()
	})

	debouncer.Trigger("a", "1")
	debouncer.Trigger("b", "2")
	debouncer.Flush()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("flush results: %v", got)
	}
}
