package vm

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// LoadProgramFile opens the file at path, validates that its length is
// a multiple of four bytes, and decodes it into the initial word
// sequence for segment 0 — each consecutive 4-byte group read as a
// big-endian uint32. Open failure, a malformed length, and read
// failure are all reported wrapped in ErrLaunch.
func LoadProgramFile(path string) ([]uint32, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLaunch, err)
	}
	defer fp.Close()

	raw, err := io.ReadAll(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLaunch, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: image length %d is not a multiple of four bytes",
			ErrLaunch, len(raw))
	}

	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[4*i : 4*i+4])
	}
	return words, nil
}
