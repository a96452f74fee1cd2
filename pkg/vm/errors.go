package vm

import "errors"

// The following sentinel errors classify every fatal condition the
// machine can raise. Callers wrap these with fmt.Errorf("%w: ...") to
// attach context (PC, register values, segment id) and use errors.Is
// to recover the underlying kind.
var (
	// ErrHalted indicates a normal, successful termination via the
	// Halt instruction. It is not a failure.
	ErrHalted = errors.New("vm: halted")

	// ErrLaunch indicates a failure before execution began: a missing
	// or unreadable program file, or an image whose length is not a
	// multiple of four bytes.
	ErrLaunch = errors.New("vm: launch failure")

	// ErrDivByZero indicates a Divide instruction with a zero divisor.
	ErrDivByZero = errors.New("vm: division by zero")

	// ErrBadSegment indicates an access through an unmapped segment
	// identifier, or an attempt to unmap segment 0 or an already-free
	// identifier.
	ErrBadSegment = errors.New("vm: invalid segment identifier")

	// ErrIO indicates a host read or write failure. End-of-input is
	// not an instance of this error; it has its own defined encoding.
	ErrIO = errors.New("vm: i/o failure")

	// ErrBadOpcode indicates an instruction word whose opcode field
	// names an unrecognized operation (14, 15, or otherwise undefined).
	ErrBadOpcode = errors.New("vm: unrecognized opcode")

	// ErrOutputRange indicates an Output instruction whose register
	// value exceeds 255.
	ErrOutputRange = errors.New("vm: output value out of range")
)
