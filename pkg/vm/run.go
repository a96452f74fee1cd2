package vm

import "errors"

// Run drives fetch/execute to completion: it fetches the instruction
// word at segment 0's current PC, dispatches it, and repeats until
// Halt or a fatal condition. It returns nil on Halt and the fatal error
// otherwise.
func (m *VM) Run() error {
	for {
		ci, err := m.fetch()
		if err != nil {
			return m.fatal(err)
		}
		if err := m.Execute(ci); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}
			return err
		}
	}
}
