package vm

import "fmt"

// Memory owns every segment the machine has mapped. Identifiers are
// dense: the set of valid identifiers is always {0} union {ids issued
// and not currently free}. Identifier 0 is permanent and always valid.
//
// Unmapped slots are represented by a nil segment slice; live tracks
// this explicitly (rather than relying on nil alone) so a segment of
// length zero is distinguishable from a freed one.
type Memory struct {
	segments [][]uint32
	live     []bool
	free     []uint32 // LIFO free pool: last-freed, first-reused
}

// NewMemory returns a Memory with only segment 0 mapped, empty.
func NewMemory() *Memory {
	return &Memory{
		segments: [][]uint32{{}},
		live:     []bool{true},
	}
}

// valid reports whether id currently names a mapped segment.
func (m *Memory) valid(id uint32) bool {
	return id < uint32(len(m.segments)) && m.live[id]
}

// LoadSegmentZero replaces segment 0's contents wholesale, as done by
// the Program Loader. It does not touch the free pool or any other
// segment.
func (m *Memory) LoadSegmentZero(words []uint32) {
	cp := make([]uint32, len(words))
	copy(cp, words)
	m.segments[0] = cp
	m.live[0] = true
}

// Len returns the number of words in segment id.
func (m *Memory) Len(id uint32) (uint32, error) {
	if !m.valid(id) {
		return 0, fmt.Errorf("%w: segment %d not mapped", ErrBadSegment, id)
	}
	return uint32(len(m.segments[id])), nil
}

// Load reads the word at offset off within segment id.
func (m *Memory) Load(id, off uint32) (uint32, error) {
	if !m.valid(id) {
		return 0, fmt.Errorf("%w: segment %d not mapped", ErrBadSegment, id)
	}
	seg := m.segments[id]
	if off >= uint32(len(seg)) {
		return 0, fmt.Errorf("%w: offset %d out of bounds for segment %d (len %d)",
			ErrBadSegment, off, id, len(seg))
	}
	return seg[off], nil
}

// Store writes value at offset off within segment id.
func (m *Memory) Store(id, off, value uint32) error {
	if !m.valid(id) {
		return fmt.Errorf("%w: segment %d not mapped", ErrBadSegment, id)
	}
	seg := m.segments[id]
	if off >= uint32(len(seg)) {
		return fmt.Errorf("%w: offset %d out of bounds for segment %d (len %d)",
			ErrBadSegment, off, id, len(seg))
	}
	seg[off] = value
	return nil
}

// Map allocates a new segment of the given length, every word
// initialized to zero, and returns its identifier. If the free pool is
// non-empty the most recently freed identifier is reused (LIFO);
// otherwise a fresh identifier one greater than the largest ever issued
// is handed out.
func (m *Memory) Map(length uint32) uint32 {
	words := make([]uint32, length)
	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		m.segments[id] = words
		m.live[id] = true
		return id
	}
	id := uint32(len(m.segments))
	m.segments = append(m.segments, words)
	m.live = append(m.live, true)
	return id
}

// Unmap releases segment id and returns its identifier to the free
// pool. Unmapping segment 0 or an identifier that is not currently
// mapped is fatal.
func (m *Memory) Unmap(id uint32) error {
	if id == 0 {
		return fmt.Errorf("%w: cannot unmap segment 0", ErrBadSegment)
	}
	if !m.valid(id) {
		return fmt.Errorf("%w: segment %d not mapped", ErrBadSegment, id)
	}
	m.segments[id] = nil
	m.live[id] = false
	m.free = append(m.free, id)
	return nil
}

// Replace copies the contents of segment src into segment 0. Copying
// segment 0 into itself is a defined no-op.
func (m *Memory) Replace(src uint32) error {
	if src == 0 {
		return nil
	}
	if !m.valid(src) {
		return fmt.Errorf("%w: segment %d not mapped", ErrBadSegment, src)
	}
	cp := make([]uint32, len(m.segments[src]))
	copy(cp, m.segments[src])
	m.segments[0] = cp
	return nil
}

// LiveCount returns the number of currently mapped segments, including
// segment 0. It is used only for invariant checks and the postmortem
// diagnostic dump.
func (m *Memory) LiveCount() int {
	n := 0
	for _, ok := range m.live {
		if ok {
			n++
		}
	}
	return n
}

// FreePoolDepth returns the number of identifiers waiting to be reused.
func (m *Memory) FreePoolDepth() int {
	return len(m.free)
}
