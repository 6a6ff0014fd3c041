package util

import (
	"fmt"
	"io"
)

// ReadAllLimit reads r to EOF, failing with ErrTooLarge once more than
// limit bytes arrive
func ReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
