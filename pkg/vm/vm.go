package vm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// VM is a single UM-32 machine instance: eight registers, a program
// counter indexing segment 0, a segment table, and an I/O gate. It is
// not goroutine-safe; a single goroutine drives fetch/execute.
type VM struct {
	Registers [8]uint32
	PC        uint32
	Mem       *Memory
	IO        *IOGate

	log *logrus.Logger
}

// New constructs a VM with segment 0 initialized to program, ready to
// run from PC 0. log may be nil, in which case lifecycle events are
// discarded.
func New(program []uint32, io *IOGate, log *logrus.Logger) *VM {
	m := NewMemory()
	m.LoadSegmentZero(program)
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel) // effectively silent
	}
	return &VM{Mem: m, IO: io, log: log}
}

// Snapshot is a point-in-time, read-only view of machine state, used
// only by the postmortem diagnostic dump (never by execution logic).
type Snapshot struct {
	PC            uint32
	Registers     [8]uint32
	LiveSegments  int
	FreePoolDepth int
}

// State returns a Snapshot of the machine's current state.
func (m *VM) State() Snapshot {
	return Snapshot{
		PC:            m.PC,
		Registers:     m.Registers,
		LiveSegments:  m.Mem.LiveCount(),
		FreePoolDepth: m.Mem.FreePoolDepth(),
	}
}

// fetch reads the instruction word at the current PC from segment 0.
// It does not advance PC itself — PC advancement is each opcode
// handler's responsibility (see exec.go), since Load Program must be
// able to overwrite PC instead of incrementing it.
func (m *VM) fetch() (uint32, error) {
	return m.Mem.Load(0, m.PC)
}

// fatal wraps err with the current PC for diagnostic purposes and logs
// it at error level before returning it to the caller.
func (m *VM) fatal(err error) error {
	wrapped := fmt.Errorf("%w (pc=%d)", err, m.PC)
	m.log.WithFields(logrus.Fields{
		"pc":    m.PC,
		"error": err,
	}).Error("um32: fatal abort")
	return wrapped
}
