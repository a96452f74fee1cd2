package vm

import "fmt"

// Execute decodes and runs the single instruction word ci, mutating
// registers, memory, and PC as needed. It returns ErrHalted when the
// Halt instruction runs (the only successful termination) and any
// other error for a fatal condition. PC advances by exactly one after
// every handler except Halt, which leaves PC unchanged, and Load
// Program, which sets PC to R[C].
func (m *VM) Execute(ci uint32) error {
	op := DecodeOpcode(ci)

	if op == OpLoadValue {
		r := DecodeLoadValueReg(ci)
		m.Registers[r] = DecodeLoadValueImm(ci)
		m.PC++
		return nil
	}

	a, b, c := DecodeA(ci), DecodeB(ci), DecodeC(ci)

	switch op {
	case OpConditionalMove:
		if m.Registers[c] != 0 {
			m.Registers[a] = m.Registers[b]
		}
		m.PC++
		return nil

	case OpSegmentedLoad:
		v, err := m.Mem.Load(m.Registers[b], m.Registers[c])
		if err != nil {
			return m.fatal(err)
		}
		m.Registers[a] = v
		m.PC++
		return nil

	case OpSegmentedStore:
		if err := m.Mem.Store(m.Registers[a], m.Registers[b], m.Registers[c]); err != nil {
			return m.fatal(err)
		}
		m.PC++
		return nil

	case OpAdd:
		m.Registers[a] = m.Registers[b] + m.Registers[c]
		m.PC++
		return nil

	case OpMultiply:
		m.Registers[a] = m.Registers[b] * m.Registers[c]
		m.PC++
		return nil

	case OpDivide:
		if m.Registers[c] == 0 {
			return m.fatal(ErrDivByZero)
		}
		m.Registers[a] = m.Registers[b] / m.Registers[c]
		m.PC++
		return nil

	case OpBitwiseNAND:
		m.Registers[a] = ^(m.Registers[b] & m.Registers[c])
		m.PC++
		return nil

	case OpHalt:
		m.log.Info("um32: halted")
		return ErrHalted

	case OpMapSegment:
		m.Registers[b] = m.Mem.Map(m.Registers[c])
		m.PC++
		return nil

	case OpUnmapSegment:
		if err := m.Mem.Unmap(m.Registers[c]); err != nil {
			return m.fatal(err)
		}
		m.PC++
		return nil

	case OpOutput:
		v := m.Registers[c]
		if v > 255 {
			return m.fatal(fmt.Errorf("%w: %d", ErrOutputRange, v))
		}
		if err := m.IO.WriteByte(byte(v)); err != nil {
			return m.fatal(err)
		}
		m.PC++
		return nil

	case OpInput:
		v, err := m.IO.ReadByte()
		if err != nil {
			return m.fatal(err)
		}
		m.Registers[c] = v
		m.PC++
		return nil

	case OpLoadProgram:
		if m.Registers[b] != 0 {
			if err := m.Mem.Replace(m.Registers[b]); err != nil {
				return m.fatal(err)
			}
		}
		m.PC = m.Registers[c]
		return nil

	default:
		return m.fatal(fmt.Errorf("%w: %d (%s)", ErrBadOpcode, op, opcodeName(op)))
	}
}
