package store

import "testing"

type rec struct{ ID int }

func newRecMirror(base int) *Mirror[rec] {
	return NewMirror(base, func(r rec) int { return r.ID })
}

func TestNextIDBase(t *testing.T) {
	if got := newRecMirror(1).NextID(); got != 1 {
		t.Fatalf("empty mirror base 1: got %d", got)
	}
	if got := newRecMirror(1001).NextID(); got != 1001 {
		t.Fatalf("empty mirror base 1001: got %d", got)
	}
}

func TestNextIDAfterDelete(t *testing.T) {
	m := newRecMirror(1)
	m.Load([]rec{{1}, {2}, {3}})
	m.RemoveAt(2)
	// 编号不回收
	if got := m.NextID(); got != 3 {
		t.Fatalf("after deleting id 3 next id should be 3, got %d", got)
	}
	m.RemoveAt(0)
	if got := m.NextID(); got != 3 {
		t.Fatalf("max+1 should follow remaining max, got %d", got)
	}
}

func TestIndexByID(t *testing.T) {
	m := newRecMirror(1)
	m.Load([]rec{{1}, {5}, {9}})
	if got := m.IndexByID(5); got != 1 {
		t.Fatalf("want 1, got %d", got)
	}
	if got := m.IndexByID(7); got != -1 {
		t.Fatalf("missing id should be -1, got %d", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	m := newRecMirror(1)
	m.Load([]rec{{1}, {2}})
	snap := m.Snapshot()
	m.Append(rec{3})
	m.ReplaceAt(0, rec{7})
	m.Restore(snap)
	if m.Len() != 2 || m.At(0).ID != 1 {
		t.Fatalf("restore failed: len=%d first=%d", m.Len(), m.At(0).ID)
	}
}
