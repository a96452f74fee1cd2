package vm

import (
	"errors"
	"testing"
)

func TestMemorySegmentZeroAlwaysValid(t *testing.T) {
	m := NewMemory()
	if !m.valid(0) {
		t.Fatal("segment 0 must be valid on construction")
	}
	if n, err := m.Len(0); err != nil || n != 0 {
		t.Fatalf("Len(0) = %d, %v; want 0, nil", n, err)
	}
}

func TestMemoryMapZeroesNewSegment(t *testing.T) {
	m := NewMemory()
	id := m.Map(7)
	if id == 0 {
		t.Fatal("Map must never return identifier 0")
	}
	n, err := m.Len(id)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("segment length = %d, want 7", n)
	}
	for i := uint32(0); i < n; i++ {
		v, err := m.Load(id, i)
		if err != nil {
			t.Fatal(err)
		}
		if v != 0 {
			t.Errorf("word %d = %d, want 0", i, v)
		}
	}
}

func TestMemoryUnmapThenMapReusesIdentifierLIFO(t *testing.T) {
	m := NewMemory()
	id1 := m.Map(4)
	id2 := m.Map(4)
	if err := m.Unmap(id2); err != nil {
		t.Fatal(err)
	}
	if err := m.Unmap(id1); err != nil {
		t.Fatal(err)
	}
	// Last freed (id1) must be first reused.
	if got := m.Map(7); got != id1 {
		t.Fatalf("Map reused %d, want last-freed %d (LIFO)", got, id1)
	}
	if got := m.Map(7); got != id2 {
		t.Fatalf("Map reused %d, want %d next", got, id2)
	}
}

func TestMemoryUnmapSegmentZeroIsFatal(t *testing.T) {
	m := NewMemory()
	err := m.Unmap(0)
	if !errors.Is(err, ErrBadSegment) {
		t.Fatalf("got %v, want ErrBadSegment", err)
	}
}

func TestMemoryUnmapUnmappedIsFatal(t *testing.T) {
	m := NewMemory()
	err := m.Unmap(42)
	if !errors.Is(err, ErrBadSegment) {
		t.Fatalf("got %v, want ErrBadSegment", err)
	}
}

func TestMemoryAccessThroughUnmappedIdentifierIsFatal(t *testing.T) {
	m := NewMemory()
	if _, err := m.Load(99, 0); !errors.Is(err, ErrBadSegment) {
		t.Fatalf("Load: got %v, want ErrBadSegment", err)
	}
	if err := m.Store(99, 0, 1); !errors.Is(err, ErrBadSegment) {
		t.Fatalf("Store: got %v, want ErrBadSegment", err)
	}
}

func TestMemoryReplaceCopyIsIndependent(t *testing.T) {
	m := NewMemory()
	src := m.Map(2)
	if err := m.Store(src, 0, 111); err != nil {
		t.Fatal(err)
	}
	if err := m.Replace(src); err != nil {
		t.Fatal(err)
	}
	if err := m.Store(0, 0, 222); err != nil {
		t.Fatal(err)
	}
	v, err := m.Load(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 111 {
		t.Errorf("mutating segment 0 affected source segment: got %d, want 111", v)
	}
}

func TestMemoryLiveCountTracksMapsAndUnmaps(t *testing.T) {
	m := NewMemory()
	if m.LiveCount() != 1 {
		t.Fatalf("LiveCount = %d, want 1 (segment 0 only)", m.LiveCount())
	}
	a := m.Map(1)
	b := m.Map(1)
	if m.LiveCount() != 3 {
		t.Fatalf("LiveCount = %d, want 3", m.LiveCount())
	}
	if err := m.Unmap(a); err != nil {
		t.Fatal(err)
	}
	if m.LiveCount() != 2 {
		t.Fatalf("LiveCount = %d, want 2", m.LiveCount())
	}
	_ = b
}
